package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

// emailPattern is the basic local-part@domain.tld shape the API has always
// accepted. The store additionally enforces uniqueness.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type ClientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, name, email string) (*domain.Client, error) {
	if !emailPattern.MatchString(email) {
		return nil, NewServiceError(http.StatusBadRequest, "Email invalide")
	}

	client := domain.NewClient(name, email)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewServiceError(http.StatusConflict, "Un client avec cet email existe déjà")
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewServiceError(http.StatusNotFound, "Client non trouvé")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// UpdateClient replaces the client's name and email
func (s *ClientService) UpdateClient(ctx context.Context, id int64, name, email string) (*domain.Client, error) {
	if !emailPattern.MatchString(email) {
		return nil, NewServiceError(http.StatusBadRequest, "Email invalide")
	}

	client := &domain.Client{ID: id, Name: name, Email: email}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Client non trouvé")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewServiceError(http.StatusConflict, "Un client avec cet email existe déjà")
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient deletes a client. There is no referential guard: subscriptions
// referencing the client do not block the delete.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	outcome, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("failed to delete client: %w", err)
	}
	return outcome, nil
}

// ListClients lists clients with filtering
func (s *ClientService) ListClients(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// CountClients counts clients with filtering
func (s *ClientService) CountClients(ctx context.Context, filter repository.ClientFilter) (int, error) {
	count, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}
