package repositories

import (
	"context"

	"cadastro/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindOne(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, id uint, input models.UpdateProductInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
