package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

type PaymentService struct {
	paymentRepo      repository.PaymentRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	subscriptionRepo repository.SubscriptionRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CreatePayment creates a payment after checking that the referenced
// subscription exists.
func (s *PaymentService) CreatePayment(ctx context.Context, subscriptionID int64, amount float64, paymentDate time.Time) (*domain.Payment, error) {
	if amount < 0 {
		return nil, NewServiceError(http.StatusBadRequest, "Le montant doit être positif ou nul")
	}
	if _, err := s.subscriptionRepo.FindByID(ctx, subscriptionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Abonnement non trouvé")
		}
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	payment := domain.NewPayment(subscriptionID, amount, paymentDate)
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// GetPayment retrieves a payment by ID, with denormalized names
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewServiceError(http.StatusNotFound, "Paiement non trouvé")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// UpdatePayment applies a partial update: omitted fields keep their current
// stored values.
func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, amount *float64, paymentDate *time.Time) (*domain.Payment, error) {
	if amount != nil && *amount < 0 {
		return nil, NewServiceError(http.StatusBadRequest, "Le montant doit être positif ou nul")
	}

	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		payment.Amount = *amount
	}
	if paymentDate != nil {
		payment.PaymentDate = *paymentDate
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Paiement non trouvé")
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

// DeletePayment deletes a payment
func (s *PaymentService) DeletePayment(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	outcome, err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		return outcome, fmt.Errorf("failed to delete payment: %w", err)
	}
	return outcome, nil
}

// ListPayments lists payments with filtering
func (s *PaymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*domain.Payment, error) {
	if err := validateMonth(filter.Month); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// CountPayments counts payments with filtering
func (s *PaymentService) CountPayments(ctx context.Context, filter repository.PaymentFilter) (int, error) {
	if err := validateMonth(filter.Month); err != nil {
		return 0, err
	}

	count, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}
