package seeders

import (
	"log"

	"github.com/chicstyle/go-boutique/app/db/fakers"
	"github.com/chicstyle/go-boutique/app/models"
	slugutil "github.com/gosimple/slug"
	"gorm.io/gorm"
)

const productsPerCategory = 6

var storeCategories = []models.Category{
	{Name: "Tops", Image: "/images/categories/tops.jpg", Description: "Blouses, shirts and knitwear", IsActive: true},
	{Name: "Dresses", Image: "/images/categories/dresses.jpg", Description: "Day and evening dresses", IsActive: true},
	{Name: "Skirts", Image: "/images/categories/skirts.jpg", Description: "Minis, midis and maxis", IsActive: true},
	{Name: "Suits", Image: "/images/categories/suits.jpg", Description: "Two-piece sets and blazers", IsActive: true},
	{Name: "Trail", Image: "/images/categories/trail.jpg", Description: "Outdoor-ready layers", IsActive: true},
}

func DBSeed(db *gorm.DB) error {
	for i := range storeCategories {
		category := storeCategories[i]
		category.Slug = slugutil.Make(category.Name)

		if err := db.FirstOrCreate(&category, models.Category{Slug: category.Slug}).Error; err != nil {
			return err
		}

		for j := 0; j < productsPerCategory; j++ {
			if err := db.Create(fakers.ProductFaker(&category)).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded category %s with %d products", category.Slug, productsPerCategory)
	}

	admin := fakers.AdminFaker()
	if err := db.FirstOrCreate(admin, models.User{Email: admin.Email}).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin user %s", admin.Email)

	return nil
}
