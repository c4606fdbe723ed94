package repositories

import (
	"context"
	"errors"
	"fmt"

	"cadastro/internal/models"

	"gorm.io/gorm"
)

// GORMClientRepository is a GORM implementation of ClientRepository.
type GORMClientRepository struct {
	db *gorm.DB
}

// NewGORMClientRepository creates a new instance of GORMClientRepository.
func NewGORMClientRepository(db *gorm.DB) *GORMClientRepository {
	return &GORMClientRepository{
		db: db,
	}
}

// Create inserts a new client and returns it with its generated ID.
func (r *GORMClientRepository) Create(ctx context.Context, input models.CreateClientInput) (*models.Client, error) {
	client := input.ToClient()
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// FindAll retrieves all clients ordered by ID.
func (r *GORMClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

// FindOne retrieves a single client by its ID.
func (r *GORMClientRepository) FindOne(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client by ID %d: %w", id, err)
	}
	return &client, nil
}

// Update writes the present fields of input and returns the affected row count.
func (r *GORMClientRepository) Update(ctx context.Context, id uint, input models.UpdateClientInput) (int64, error) {
	changes := input.Changes()
	if len(changes) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update client %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a client by its ID and returns the affected row count.
func (r *GORMClientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete client %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
