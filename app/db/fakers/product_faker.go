package fakers

import (
	"math/rand"

	"github.com/chicstyle/go-boutique/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

var productImages = []string{
	"/images/products/look-01.jpg",
	"/images/products/look-02.jpg",
	"/images/products/look-03.jpg",
}

func ProductFaker(category *models.Category) *models.Product {
	price := fakePrice()

	product := &models.Product{
		Name:        faker.Word() + " " + faker.Word(),
		Price:       price,
		Image:       productImages[rand.Intn(len(productImages))],
		Category:    category.Slug,
		Description: faker.Paragraph(),
		IsNew:       rand.Intn(3) == 0,
		InStock:     rand.Intn(10) != 0,
	}

	// Roughly a third of the catalog goes on sale with a visible markdown.
	if rand.Intn(3) == 0 {
		discount := rand.Intn(50) + 10
		original := price
		discounted := price.Mul(decimal.NewFromInt(int64(100 - discount))).Div(decimal.NewFromInt(100)).Round(2)

		product.IsSale = true
		product.Discount = &discount
		product.OriginalPrice = &original
		product.Price = discounted
	}

	return product
}

func fakePrice() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(190) + 10)).Sub(decimal.NewFromFloat(0.01))
}
