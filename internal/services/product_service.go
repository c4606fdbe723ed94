package services

import (
	"context"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
)

const resourceProduct = "product"

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create stores a new product. Field values are passed through as given;
// the store enforces code uniqueness and the fabrication values.
func (s *ProductService) Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, resourceProduct, EventCreated, product.ID, 1)
	return product, nil
}

// FindAll retrieves all products.
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// FindOne retrieves a single product by its ID.
func (s *ProductService) FindOne(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.FindOne(ctx, id)
}

// Update applies a partial update and returns the affected row count.
func (s *ProductService) Update(ctx context.Context, id uint, input models.UpdateProductInput) (int64, error) {
	if len(input.Changes()) == 0 {
		return 0, errEmptyUpdate
	}
	affected, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		publish(s.publisher, resourceProduct, EventUpdated, id, affected)
	}
	return affected, nil
}

// Remove deletes a product by its ID.
func (s *ProductService) Remove(ctx context.Context, id uint) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		publish(s.publisher, resourceProduct, EventDeleted, id, affected)
	}
	return affected, nil
}
