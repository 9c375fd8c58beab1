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

func newSubscriptionRouter(subRepo *mockSubscriptionRepo, clientRepo *mockClientRepo, offerRepo *mockOfferRepo) *gin.Engine {
	handler := NewSubscriptionHandler(service.NewSubscriptionService(subRepo, clientRepo, offerRepo))
	router := gin.New()
	router.GET("/abonnements", handler.ListSubscriptions)
	router.GET("/abonnements/:id", handler.GetSubscription)
	router.POST("/abonnements", handler.CreateSubscription)
	router.PUT("/abonnements/:id", handler.UpdateSubscription)
	router.DELETE("/abonnements/:id", handler.DeleteSubscription)
	return router
}

func TestCreateSubscription(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		clientExists   bool
		offerExists    bool
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid open-ended subscription",
			body:           `{"client_id": 1, "offre_id": 2, "date_debut": "2026-01-15"}`,
			clientExists:   true,
			offerExists:    true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid bounded subscription",
			body:           `{"client_id": 1, "offre_id": 2, "date_debut": "2026-01-15", "date_fin": "2026-12-31"}`,
			clientExists:   true,
			offerExists:    true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed start date",
			body:           `{"client_id": 1, "offre_id": 2, "date_debut": "15/01/2026"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Date de début invalide (format attendu: YYYY-MM-DD)",
		},
		{
			name:           "malformed end date",
			body:           `{"client_id": 1, "offre_id": 2, "date_debut": "2026-01-15", "date_fin": "soon"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Date de fin invalide (format attendu: YYYY-MM-DD)",
		},
		{
			name:           "unknown client",
			body:           `{"client_id": 9, "offre_id": 2, "date_debut": "2026-01-15"}`,
			clientExists:   false,
			offerExists:    true,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Client non trouvé",
		},
		{
			name:           "unknown offer",
			body:           `{"client_id": 1, "offre_id": 9, "date_debut": "2026-01-15"}`,
			clientExists:   true,
			offerExists:    false,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Offre non trouvée",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientRepo := &mockClientRepo{
				FindByIDFn: func(ctx context.Context, id int64) (*domain.Client, error) {
					if !tt.clientExists {
						return nil, repository.ErrNotFound
					}
					return &domain.Client{ID: id, Name: "Alice Durand"}, nil
				},
			}
			offerRepo := &mockOfferRepo{
				FindByIDFn: func(ctx context.Context, id int64) (*domain.Offer, error) {
					if !tt.offerExists {
						return nil, repository.ErrNotFound
					}
					return &domain.Offer{ID: id, Name: "Fibre 1000"}, nil
				},
			}
			subRepo := &mockSubscriptionRepo{
				CreateFn: func(ctx context.Context, sub *domain.Subscription) error {
					sub.ID = 11
					sub.ClientName = "Alice Durand"
					sub.OfferName = "Fibre 1000"
					return nil
				},
			}
			router := newSubscriptionRouter(subRepo, clientRepo, offerRepo)

			w := performRequest(router, http.MethodPost, "/abonnements", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp dto.SubscriptionResponse
				decodeBody(t, w, &resp)
				if resp.ID != 11 || resp.ClientNom != "Alice Durand" || resp.OffreNom != "Fibre 1000" {
					t.Errorf("unexpected response: %+v", resp)
				}
				if resp.DateDebut != "2026-01-15" {
					t.Errorf("expected date_debut 2026-01-15, got %q", resp.DateDebut)
				}
				return
			}
			var errResp dto.ErrorResponse
			decodeBody(t, w, &errResp)
			if errResp.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, errResp.Message)
			}
		})
	}
}

func TestUpdateSubscriptionPartial(t *testing.T) {
	stored := &domain.Subscription{
		ID:        5,
		ClientID:  1,
		OfferID:   2,
		StartDate: date(2026, time.January, 15),
		EndDate:   nil,
	}

	var updated *domain.Subscription
	subRepo := &mockSubscriptionRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*domain.Subscription, error) {
			copied := *stored
			return &copied, nil
		},
		UpdateFn: func(ctx context.Context, sub *domain.Subscription) error {
			updated = sub
			return nil
		},
	}
	offerRepo := &mockOfferRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*domain.Offer, error) {
			return &domain.Offer{ID: id, Name: "Fibre 2000"}, nil
		},
	}
	router := newSubscriptionRouter(subRepo, &mockClientRepo{}, offerRepo)

	// Only the offer changes: dates and client must keep their stored values
	w := performRequest(router, http.MethodPut, "/abonnements/5", `{"offre_id": 3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if updated == nil {
		t.Fatal("expected an update call")
	}
	if updated.OfferID != 3 {
		t.Errorf("expected offer 3, got %d", updated.OfferID)
	}
	if updated.ClientID != 1 {
		t.Errorf("expected client to be immutable, got %d", updated.ClientID)
	}
	if !updated.StartDate.Equal(date(2026, time.January, 15)) {
		t.Errorf("expected start date to be preserved, got %v", updated.StartDate)
	}
	if updated.EndDate != nil {
		t.Errorf("expected end date to stay nil, got %v", updated.EndDate)
	}
}

func TestListSubscriptionsFilters(t *testing.T) {
	var captured repository.SubscriptionFilter
	subRepo := &mockSubscriptionRepo{
		ListFn: func(ctx context.Context, filter repository.SubscriptionFilter) ([]*domain.Subscription, error) {
			captured = filter
			return nil, nil
		},
		CountFn: func(ctx context.Context, filter repository.SubscriptionFilter) (int, error) {
			return 0, nil
		},
	}
	router := newSubscriptionRouter(subRepo, &mockClientRepo{}, &mockOfferRepo{})

	w := performRequest(router, http.MethodGet, "/abonnements?client_id=1&offre_id=2&mois=2026-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if captured.ClientID == nil || *captured.ClientID != 1 {
		t.Errorf("expected client filter 1, got %v", captured.ClientID)
	}
	if captured.OfferID == nil || *captured.OfferID != 2 {
		t.Errorf("expected offer filter 2, got %v", captured.OfferID)
	}
	if captured.Month == nil || *captured.Month != "2026-01" {
		t.Errorf("expected month filter 2026-01, got %v", captured.Month)
	}

	var resp dto.SubscriptionListResponse
	decodeBody(t, w, &resp)
	if len(resp.Items) != 0 || resp.Pagination.Pages != 1 {
		t.Errorf("unexpected empty listing: %+v", resp)
	}

	// Malformed month never reaches the store
	w = performRequest(router, http.MethodGet, "/abonnements?mois=janvier", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	var errResp dto.ErrorResponse
	decodeBody(t, w, &errResp)
	if errResp.Message != "Mois invalide (format attendu: YYYY-MM)" {
		t.Errorf("unexpected message %q", errResp.Message)
	}

	w = performRequest(router, http.MethodGet, "/abonnements?client_id=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for bad client_id, got %d", w.Code)
	}
}

func TestDeleteSubscription(t *testing.T) {
	tests := []struct {
		name           string
		outcome        domain.DeleteOutcome
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "deleted",
			outcome:        domain.DeleteOutcomeDeleted,
			expectedStatus: http.StatusOK,
			expectedMsg:    "Abonnement supprimé avec succès",
		},
		{
			name:           "blocked by payments",
			outcome:        domain.DeleteOutcomeBlocked,
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Impossible de supprimer cet abonnement car il a des paiements associés",
		},
		{
			name:           "not found",
			outcome:        domain.DeleteOutcomeNotFound,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Abonnement non trouvé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subRepo := &mockSubscriptionRepo{
				DeleteFn: func(ctx context.Context, id int64) (domain.DeleteOutcome, error) {
					return tt.outcome, nil
				},
			}
			router := newSubscriptionRouter(subRepo, &mockClientRepo{}, &mockOfferRepo{})

			w := performRequest(router, http.MethodDelete, "/abonnements/5", "")
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp dto.MessageResponse
				decodeBody(t, w, &resp)
				if resp.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, resp.Message)
				}
			} else {
				var errResp dto.ErrorResponse
				decodeBody(t, w, &errResp)
				if errResp.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, errResp.Message)
				}
			}
		})
	}
}
