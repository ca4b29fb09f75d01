package repositories

import (
	"context"
	"errors"

	"github.com/chicstyle/go-boutique/app/models"
	"gorm.io/gorm"
)

// ProductFilter mirrors the catalog query parameters: empty/zero values mean
// "no filter". Sort is one of price-low, price-high, newest.
type ProductFilter struct {
	Category string
	SaleOnly bool
	NewOnly  bool
	Sort     string
}

type ProductRepositoryImpl interface {
	GetFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	GetByCategoryPaginated(ctx context.Context, category string, limit, offset int) ([]models.Product, int64, error)
	GetFlashSale(ctx context.Context, limit int) ([]models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStock(ctx context.Context, inStock bool) (int64, error)
	CountOnSale(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categorySlug string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) filtered(ctx context.Context, filter ProductFilter) *gorm.DB {
	query := p.db.WithContext(ctx).Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SaleOnly {
		query = query.Where("is_sale = ?", true)
	}
	if filter.NewOnly {
		query = query.Where("is_new = ?", true)
	}
	return query
}

func (p *productRepository) GetFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch filter.Sort {
	case "price-low":
		order = "price ASC"
	case "price-high":
		order = "price DESC"
	case "newest":
		order = "created_at DESC"
	}

	err := p.filtered(ctx, filter).
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByCategoryPaginated(ctx context.Context, category string, limit, offset int) ([]models.Product, int64, error) {
	return p.GetFiltered(ctx, ProductFilter{Category: category}, limit, offset)
}

func (p *productRepository) GetFlashSale(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("is_sale = ? AND discount > 0", true).
		Order("discount DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

func (p *productRepository) CountByStock(ctx context.Context, inStock bool) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Where("in_stock = ?", inStock).Count(&total).Error
	return total, err
}

func (p *productRepository) CountOnSale(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Where("is_sale = ?", true).Count(&total).Error
	return total, err
}

func (p *productRepository) CountByCategory(ctx context.Context, categorySlug string) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Where("category = ?", categorySlug).Count(&total).Error
	return total, err
}
