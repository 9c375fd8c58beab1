package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func validateMonth(month *string) error {
	if month != nil && *month != "" && !monthPattern.MatchString(*month) {
		return NewServiceError(http.StatusBadRequest, "Mois invalide (format attendu: YYYY-MM)")
	}
	return nil
}

type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	clientRepo       repository.ClientRepository
	offerRepo        repository.OfferRepository
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	clientRepo repository.ClientRepository,
	offerRepo repository.OfferRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		clientRepo:       clientRepo,
		offerRepo:        offerRepo,
	}
}

// CreateSubscription creates a subscription after checking that the
// referenced client and offer exist. The existence checks belong here, not in
// the HTTP layer: integrity must not depend on a foreign-key failure
// surfacing as a generic store error.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, clientID, offerID int64, startDate time.Time, endDate *time.Time) (*domain.Subscription, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Client non trouvé")
		}
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if _, err := s.offerRepo.FindByID(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Offre non trouvée")
		}
		return nil, fmt.Errorf("failed to check offer: %w", err)
	}

	sub := domain.NewSubscription(clientID, offerID, startDate, endDate)
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

// GetSubscription retrieves a subscription by ID, with denormalized names
func (s *SubscriptionService) GetSubscription(ctx context.Context, id int64) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewServiceError(http.StatusNotFound, "Abonnement non trouvé")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// UpdateSubscription applies a partial update: omitted fields keep their
// current stored values. The client reference is immutable.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id int64, offerID *int64, startDate, endDate *time.Time) (*domain.Subscription, error) {
	sub, err := s.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if offerID != nil {
		if _, err := s.offerRepo.FindByID(ctx, *offerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusNotFound, "Offre non trouvée")
			}
			return nil, fmt.Errorf("failed to check offer: %w", err)
		}
		sub.OfferID = *offerID
	}
	if startDate != nil {
		sub.StartDate = *startDate
	}
	if endDate != nil {
		sub.EndDate = endDate
	}

	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Abonnement non trouvé")
		}
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

// DeleteSubscription deletes a subscription unless payments still reference it.
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	outcome, err := s.subscriptionRepo.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("failed to delete subscription: %w", err)
	}
	return outcome, nil
}

// ListSubscriptions lists subscriptions with filtering
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, filter repository.SubscriptionFilter) ([]*domain.Subscription, error) {
	if err := validateMonth(filter.Month); err != nil {
		return nil, err
	}

	subs, err := s.subscriptionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// CountSubscriptions counts subscriptions with filtering
func (s *SubscriptionService) CountSubscriptions(ctx context.Context, filter repository.SubscriptionFilter) (int, error) {
	if err := validateMonth(filter.Month); err != nil {
		return 0, err
	}

	count, err := s.subscriptionRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}
