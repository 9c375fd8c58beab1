package handler

import (
	"context"

	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
)

// Hand-written function-field mocks. Set only the Fn fields a test needs; a
// nil Fn panics, which means the test hit an unexpected code path.

type mockClientRepo struct {
	CreateFn   func(ctx context.Context, client *domain.Client) error
	FindByIDFn func(ctx context.Context, id int64) (*domain.Client, error)
	UpdateFn   func(ctx context.Context, client *domain.Client) error
	DeleteFn   func(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	ListFn     func(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error)
	CountFn    func(ctx context.Context, filter repository.ClientFilter) (int, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.CreateFn(ctx, client)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	return m.UpdateFn(ctx, client)
}

func (m *mockClientRepo) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	return m.DeleteFn(ctx, id)
}

func (m *mockClientRepo) List(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockClientRepo) Count(ctx context.Context, filter repository.ClientFilter) (int, error) {
	return m.CountFn(ctx, filter)
}

type mockOfferRepo struct {
	CreateFn   func(ctx context.Context, offer *domain.Offer) error
	FindByIDFn func(ctx context.Context, id int64) (*domain.Offer, error)
	UpdateFn   func(ctx context.Context, offer *domain.Offer) error
	DeleteFn   func(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	ListFn     func(ctx context.Context, filter repository.OfferFilter) ([]*domain.Offer, error)
	CountFn    func(ctx context.Context, filter repository.OfferFilter) (int, error)
}

func (m *mockOfferRepo) Create(ctx context.Context, offer *domain.Offer) error {
	return m.CreateFn(ctx, offer)
}

func (m *mockOfferRepo) FindByID(ctx context.Context, id int64) (*domain.Offer, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockOfferRepo) Update(ctx context.Context, offer *domain.Offer) error {
	return m.UpdateFn(ctx, offer)
}

func (m *mockOfferRepo) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	return m.DeleteFn(ctx, id)
}

func (m *mockOfferRepo) List(ctx context.Context, filter repository.OfferFilter) ([]*domain.Offer, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockOfferRepo) Count(ctx context.Context, filter repository.OfferFilter) (int, error) {
	return m.CountFn(ctx, filter)
}

type mockSubscriptionRepo struct {
	CreateFn   func(ctx context.Context, sub *domain.Subscription) error
	FindByIDFn func(ctx context.Context, id int64) (*domain.Subscription, error)
	UpdateFn   func(ctx context.Context, sub *domain.Subscription) error
	DeleteFn   func(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	ListFn     func(ctx context.Context, filter repository.SubscriptionFilter) ([]*domain.Subscription, error)
	CountFn    func(ctx context.Context, filter repository.SubscriptionFilter) (int, error)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *domain.Subscription) error {
	return m.CreateFn(ctx, sub)
}

func (m *mockSubscriptionRepo) FindByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *domain.Subscription) error {
	return m.UpdateFn(ctx, sub)
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	return m.DeleteFn(ctx, id)
}

func (m *mockSubscriptionRepo) List(ctx context.Context, filter repository.SubscriptionFilter) ([]*domain.Subscription, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockSubscriptionRepo) Count(ctx context.Context, filter repository.SubscriptionFilter) (int, error) {
	return m.CountFn(ctx, filter)
}

type mockPaymentRepo struct {
	CreateFn   func(ctx context.Context, payment *domain.Payment) error
	FindByIDFn func(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateFn   func(ctx context.Context, payment *domain.Payment) error
	DeleteFn   func(ctx context.Context, id int64) (domain.DeleteOutcome, error)
	ListFn     func(ctx context.Context, filter repository.PaymentFilter) ([]*domain.Payment, error)
	CountFn    func(ctx context.Context, filter repository.PaymentFilter) (int, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.CreateFn(ctx, payment)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	return m.UpdateFn(ctx, payment)
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
	return m.DeleteFn(ctx, id)
}

func (m *mockPaymentRepo) List(ctx context.Context, filter repository.PaymentFilter) ([]*domain.Payment, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockPaymentRepo) Count(ctx context.Context, filter repository.PaymentFilter) (int, error) {
	return m.CountFn(ctx, filter)
}

type mockLogRepo struct {
	FindByIDFn func(ctx context.Context, id int64) (*domain.Log, error)
	ListFn     func(ctx context.Context, filter repository.LogFilter) ([]*domain.Log, error)
	CountFn    func(ctx context.Context, filter repository.LogFilter) (int, error)
}

func (m *mockLogRepo) FindByID(ctx context.Context, id int64) (*domain.Log, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockLogRepo) List(ctx context.Context, filter repository.LogFilter) ([]*domain.Log, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockLogRepo) Count(ctx context.Context, filter repository.LogFilter) (int, error) {
	return m.CountFn(ctx, filter)
}
