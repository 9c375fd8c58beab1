package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

type OfferService struct {
	offerRepo repository.OfferRepository
}

func NewOfferService(offerRepo repository.OfferRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo}
}

// CreateOffer creates a new offer
func (s *OfferService) CreateOffer(ctx context.Context, name string, debitMbps, price *int) (*domain.Offer, error) {
	offer := domain.NewOffer(name, debitMbps, price)
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewServiceError(http.StatusConflict, "Une offre avec ce nom existe déjà")
		}
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return offer, nil
}

// GetOffer retrieves an offer by ID
func (s *OfferService) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewServiceError(http.StatusNotFound, "Offre non trouvée")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

// UpdateOffer replaces the offer's fields. Omitted optional fields fall back
// to the current stored values.
func (s *OfferService) UpdateOffer(ctx context.Context, id int64, name *string, debitMbps, price *int) (*domain.Offer, error) {
	offer, err := s.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		offer.Name = *name
	}
	if debitMbps != nil {
		offer.DebitMbps = debitMbps
	}
	if price != nil {
		offer.Price = price
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Offre non trouvée")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewServiceError(http.StatusConflict, "Une offre avec ce nom existe déjà")
		}
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return offer, nil
}

// DeleteOffer deletes an offer unless subscriptions still reference it.
func (s *OfferService) DeleteOffer(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	outcome, err := s.offerRepo.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("failed to delete offer: %w", err)
	}
	return outcome, nil
}

// ListOffers lists offers with filtering
func (s *OfferService) ListOffers(ctx context.Context, filter repository.OfferFilter) ([]*domain.Offer, error) {
	offers, err := s.offerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// CountOffers counts offers with filtering
func (s *OfferService) CountOffers(ctx context.Context, filter repository.OfferFilter) (int, error) {
	count, err := s.offerRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}
	return count, nil
}
