package repositories

import (
	"context"
	"errors"

	"github.com/chicstyle/go-boutique/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetActive(ctx context.Context) ([]models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db          *gorm.DB
	productRepo ProductRepositoryImpl
}

func NewCategoryRepository(db *gorm.DB, productRepo ProductRepositoryImpl) CategoryRepositoryImpl {
	return &categoryRepository{db: db, productRepo: productRepo}
}

// fillProductCounts resolves the derived productCount attribute against the
// live products table.
func (c *categoryRepository) fillProductCounts(ctx context.Context, categories []models.Category) error {
	for i := range categories {
		count, err := c.productRepo.CountByCategory(ctx, categories[i].Slug)
		if err != nil {
			return err
		}
		categories[i].ProductCount = count
	}
	return nil
}

func (c *categoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.db.WithContext(ctx).Where("is_active = ?", true).Find(&categories).Error; err != nil {
		return nil, err
	}
	if err := c.fillProductCounts(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	if err := c.fillProductCounts(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := c.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	count, err := c.productRepo.CountByCategory(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	category.ProductCount = count

	return &category, nil
}

func (c *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return c.db.WithContext(ctx).Save(category).Error
}

func (c *categoryRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	res := c.db.WithContext(ctx).Delete(&models.Category{}, "slug = ?", slug)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (c *categoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := c.db.WithContext(ctx).Model(&models.Category{}).Count(&total).Error
	return total, err
}
