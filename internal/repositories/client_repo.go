package repositories

import (
	"context"

	"cadastro/internal/models"
)

// ClientRepository defines the interface for client data access.
type ClientRepository interface {
	Create(ctx context.Context, input models.CreateClientInput) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	FindOne(ctx context.Context, id uint) (*models.Client, error)
	Update(ctx context.Context, id uint, input models.UpdateClientInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
