package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/wigest/internal/api/dto"
	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
	"github.com/martijn/wigest/internal/core/service"
)

func newPaymentRouter(paymentRepo *mockPaymentRepo, subRepo *mockSubscriptionRepo) *gin.Engine {
	handler := NewPaymentHandler(service.NewPaymentService(paymentRepo, subRepo))
	router := gin.New()
	router.GET("/paiements", handler.ListPayments)
	router.GET("/paiements/:id", handler.GetPayment)
	router.POST("/paiements", handler.CreatePayment)
	router.PUT("/paiements/:id", handler.UpdatePayment)
	router.DELETE("/paiements/:id", handler.DeletePayment)
	return router
}

func TestCreatePayment(t *testing.T) {
	tests := []struct {
		name              string
		body              string
		subscriptionExist bool
		expectedStatus    int
		expectedMsg       string
	}{
		{
			name:              "valid payment",
			body:              `{"abonnement_id": 5, "montant": 39.90, "date_paiement": "2026-02-01"}`,
			subscriptionExist: true,
			expectedStatus:    http.StatusCreated,
		},
		{
			name:              "zero amount accepted",
			body:              `{"abonnement_id": 5, "montant": 0, "date_paiement": "2026-02-01"}`,
			subscriptionExist: true,
			expectedStatus:    http.StatusCreated,
		},
		{
			name:           "missing amount rejected by binding",
			body:           `{"abonnement_id": 5, "date_paiement": "2026-02-01"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount rejected by binding",
			body:           `{"abonnement_id": 5, "montant": -10, "date_paiement": "2026-02-01"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed date",
			body:           `{"abonnement_id": 5, "montant": 39.90, "date_paiement": "février"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Date de paiement invalide (format attendu: YYYY-MM-DD)",
		},
		{
			name:              "unknown subscription",
			body:              `{"abonnement_id": 9, "montant": 39.90, "date_paiement": "2026-02-01"}`,
			subscriptionExist: false,
			expectedStatus:    http.StatusNotFound,
			expectedMsg:       "Abonnement non trouvé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := &mockSubscriptionRepo{
				FindByIDFn: func(ctx context.Context, id int64) (*domain.Subscription, error) {
					if !tt.subscriptionExist {
						return nil, repository.ErrNotFound
					}
					return &domain.Subscription{ID: id}, nil
				},
			}
			paymentRepo := &mockPaymentRepo{
				CreateFn: func(ctx context.Context, payment *domain.Payment) error {
					payment.ID = 21
					payment.ClientName = "Alice Durand"
					payment.OfferName = "Fibre 1000"
					return nil
				},
			}
			router := newPaymentRouter(paymentRepo, subRepo)

			w := performRequest(router, http.MethodPost, "/paiements", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp dto.PaymentResponse
				decodeBody(t, w, &resp)
				if resp.ID != 21 || resp.ClientNom != "Alice Durand" || resp.OffreNom != "Fibre 1000" {
					t.Errorf("unexpected response: %+v", resp)
				}
				if resp.DatePaiement != "2026-02-01" {
					t.Errorf("expected date_paiement 2026-02-01, got %q", resp.DatePaiement)
				}
				return
			}
			if tt.expectedMsg != "" {
				var errResp dto.ErrorResponse
				decodeBody(t, w, &errResp)
				if errResp.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, errResp.Message)
				}
			}
		})
	}
}

func TestUpdatePaymentPartial(t *testing.T) {
	stored := &domain.Payment{
		ID:             21,
		SubscriptionID: 5,
		Amount:         39.90,
		PaymentDate:    date(2026, time.February, 1),
	}

	var updated *domain.Payment
	paymentRepo := &mockPaymentRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*domain.Payment, error) {
			copied := *stored
			return &copied, nil
		},
		UpdateFn: func(ctx context.Context, payment *domain.Payment) error {
			updated = payment
			return nil
		},
	}
	router := newPaymentRouter(paymentRepo, &mockSubscriptionRepo{})

	// Only the amount changes: the date must keep its stored value
	w := performRequest(router, http.MethodPut, "/paiements/21", `{"montant": 45}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if updated == nil {
		t.Fatal("expected an update call")
	}
	if updated.Amount != 45 {
		t.Errorf("expected amount 45, got %v", updated.Amount)
	}
	if !updated.PaymentDate.Equal(date(2026, time.February, 1)) {
		t.Errorf("expected payment date to be preserved, got %v", updated.PaymentDate)
	}
}

func TestListPaymentsFilters(t *testing.T) {
	var captured repository.PaymentFilter
	paymentRepo := &mockPaymentRepo{
		ListFn: func(ctx context.Context, filter repository.PaymentFilter) ([]*domain.Payment, error) {
			captured = filter
			return nil, nil
		},
		CountFn: func(ctx context.Context, filter repository.PaymentFilter) (int, error) {
			return 0, nil
		},
	}
	router := newPaymentRouter(paymentRepo, &mockSubscriptionRepo{})

	w := performRequest(router, http.MethodGet, "/paiements?abonnement_id=5&client_id=1&offre_id=2&mois=2026-02", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if captured.SubscriptionID == nil || *captured.SubscriptionID != 5 {
		t.Errorf("expected subscription filter 5, got %v", captured.SubscriptionID)
	}
	if captured.ClientID == nil || *captured.ClientID != 1 {
		t.Errorf("expected client filter 1, got %v", captured.ClientID)
	}
	if captured.OfferID == nil || *captured.OfferID != 2 {
		t.Errorf("expected offer filter 2, got %v", captured.OfferID)
	}
	if captured.Month == nil || *captured.Month != "2026-02" {
		t.Errorf("expected month filter 2026-02, got %v", captured.Month)
	}

	w = performRequest(router, http.MethodGet, "/paiements?mois=02-2026", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for bad month, got %d", w.Code)
	}
}

func TestDeletePayment(t *testing.T) {
	tests := []struct {
		name           string
		outcome        domain.DeleteOutcome
		expectedStatus int
	}{
		{"deleted", domain.DeleteOutcomeDeleted, http.StatusOK},
		{"not found", domain.DeleteOutcomeNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentRepo := &mockPaymentRepo{
				DeleteFn: func(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
					return tt.outcome, nil
				},
			}
			router := newPaymentRouter(paymentRepo, &mockSubscriptionRepo{})

			w := performRequest(router, http.MethodDelete, "/paiements/21", "")
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
