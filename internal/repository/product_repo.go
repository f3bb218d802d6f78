package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-service/internal/model"
	"sales-service/prometheus"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepo implements product persistence on GORM
type ProductRepo struct {
	table
}

// NewProductRepo creates a new ProductRepo
func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{table{db: db, entity: "product", columns: []string{"name", "description", "price"}}}
}

// List returns every product ordered by id
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.list(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product with the given id or ErrNotFound
func (r *ProductRepo) Get(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.get(ctx, id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Exists reports whether the product exists
func (r *ProductRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsIn(r.session(ctx), &model.Product{}, id)
}

// Insert creates the product and sets its assigned id
func (r *ProductRepo) Insert(ctx context.Context, product *model.Product) error {
	return r.insert(ctx, product, nil)
}

// Replace overwrites every field of the product with the given id
func (r *ProductRepo) Replace(ctx context.Context, id uint, product *model.Product) error {
	product.ID = id
	return r.replace(ctx, id, product, nil)
}

// Delete removes the product. Products used by order lines cannot be deleted.
func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id, &model.Product{}, func(tx *gorm.DB) error {
		return restrict(tx, &model.OrderDetail{}, r.entity, id, "product_id")
	})
}

// PricedAbove returns products strictly more expensive than minPrice
func (r *ProductRepo) PricedAbove(ctx context.Context, minPrice decimal.Decimal) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	products := []model.Product{}
	if err := r.session(ctx).Where("price > ?", minPrice).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products by price: %w", err)
	}
	return products, nil
}

// MostExpensive returns the highest priced product, lowest id first on ties
func (r *ProductRepo) MostExpensive(ctx context.Context) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var product model.Product
	err := r.session(ctx).Order("price DESC, id ASC").First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no products: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find most expensive product: %w", err)
	}
	return &product, nil
}

// PriceStats returns the product count and the average price, zero when empty
func (r *ProductRepo) PriceStats(ctx context.Context) (model.PriceStats, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var stats model.PriceStats
	err := r.session(ctx).
		Model(&model.Product{}).
		Select("COUNT(*) AS product_count, COALESCE(AVG(price), 0) AS average_price").
		Scan(&stats).Error
	if err != nil {
		return model.PriceStats{}, fmt.Errorf("failed to aggregate product prices: %w", err)
	}
	return stats, nil
}

// WithoutDescription returns products whose description is NULL or empty
func (r *ProductRepo) WithoutDescription(ctx context.Context) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	products := []model.Product{}
	err := r.session(ctx).
		Where("description IS NULL OR description = ''").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter products without description: %w", err)
	}
	return products, nil
}
