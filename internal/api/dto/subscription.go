package dto

// Dates are carried as YYYY-MM-DD strings on the wire.

// CreateSubscriptionRequest represents the subscription creation request
type CreateSubscriptionRequest struct {
	ClientID  int64   `json:"client_id" binding:"required"`
	OffreID   int64   `json:"offre_id" binding:"required"`
	DateDebut string  `json:"date_debut" binding:"required"`
	DateFin   *string `json:"date_fin,omitempty"`
}

// UpdateSubscriptionRequest represents the subscription update request.
// The client reference is immutable; omitted fields keep their stored values.
type UpdateSubscriptionRequest struct {
	OffreID   *int64  `json:"offre_id,omitempty"`
	DateDebut *string `json:"date_debut,omitempty"`
	DateFin   *string `json:"date_fin,omitempty"`
}

// SubscriptionResponse represents a subscription with the client and offer
// names joined in
type SubscriptionResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"client_id"`
	ClientNom string  `json:"client_nom"`
	OffreID   int64   `json:"offre_id"`
	OffreNom  string  `json:"offre_nom"`
	DateDebut string  `json:"date_debut"`
	DateFin   *string `json:"date_fin"`
}

// SubscriptionListResponse represents a paginated list of subscriptions
type SubscriptionListResponse struct {
	Items      []SubscriptionResponse `json:"items"`
	Pagination PaginationInfo         `json:"pagination"`
}

// SubscriptionStatsResponse is the unpaginated listing served under /stats
type SubscriptionStatsResponse struct {
	Abonnements []SubscriptionResponse `json:"abonnements"`
}
