package repositories

import (
	"context"
	"errors"
	"fmt"

	"cadastro/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product and returns it with its generated ID.
func (r *GORMProductRepository) Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	product := input.ToProduct()
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// FindAll retrieves all products ordered by ID.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindOne retrieves a single product by its ID.
func (r *GORMProductRepository) FindOne(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Update writes the present fields of input and returns the affected row count.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, input models.UpdateProductInput) (int64, error) {
	changes := input.Changes()
	if len(changes) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a product by its ID and returns the affected row count.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
