package services

import (
	"context"

	"cadastro/internal/models"
	"cadastro/internal/repositories"
	"cadastro/internal/validation"
)

const resourceClient = "client"

// ClientService handles business logic related to clients.
type ClientService struct {
	repo      repositories.ClientRepository
	publisher EventPublisher
}

// NewClientService creates a new ClientService. publisher may be nil.
func NewClientService(repo repositories.ClientRepository, publisher EventPublisher) *ClientService {
	return &ClientService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create validates email and document, then stores the client with the
// document reduced to its 11 digits.
func (s *ClientService) Create(ctx context.Context, input models.CreateClientInput) (*models.Client, error) {
	if !validation.EmailIsValid(input.Email) {
		return nil, errInvalidEmail
	}
	if !validation.CPFIsValid(input.Document) {
		return nil, errInvalidDocument
	}
	input.Document = validation.NormalizeCPF(input.Document)

	client, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, resourceClient, EventCreated, client.ID, 1)
	return client, nil
}

// FindAll retrieves all clients.
func (s *ClientService) FindAll(ctx context.Context) ([]models.Client, error) {
	return s.repo.FindAll(ctx)
}

// FindOne retrieves a single client by its ID.
func (s *ClientService) FindOne(ctx context.Context, id uint) (*models.Client, error) {
	return s.repo.FindOne(ctx, id)
}

// Update applies a partial update. Email and document are only validated
// when present; a present document is stored in its digits-only form.
func (s *ClientService) Update(ctx context.Context, id uint, input models.UpdateClientInput) (int64, error) {
	if len(input.Changes()) == 0 {
		return 0, errEmptyUpdate
	}
	if input.Email.Set && !validation.EmailIsValid(input.Email.Value) {
		return 0, errInvalidEmail
	}
	if input.Document.Set {
		if !validation.CPFIsValid(input.Document.Value) {
			return 0, errInvalidDocument
		}
		input.Document.Value = validation.NormalizeCPF(input.Document.Value)
	}

	affected, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		publish(s.publisher, resourceClient, EventUpdated, id, affected)
	}
	return affected, nil
}

// Remove deletes a client by its ID.
func (s *ClientService) Remove(ctx context.Context, id uint) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		publish(s.publisher, resourceClient, EventDeleted, id, affected)
	}
	return affected, nil
}
