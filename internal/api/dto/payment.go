package dto

// CreatePaymentRequest represents the payment creation request
type CreatePaymentRequest struct {
	AbonnementID int64    `json:"abonnement_id" binding:"required"`
	Montant      *float64 `json:"montant" binding:"required,min=0"`
	DatePaiement string   `json:"date_paiement" binding:"required"`
}

// UpdatePaymentRequest represents the payment update request. Omitted fields
// keep their stored values.
type UpdatePaymentRequest struct {
	Montant      *float64 `json:"montant,omitempty" binding:"omitempty,min=0"`
	DatePaiement *string  `json:"date_paiement,omitempty"`
}

// PaymentResponse represents a payment with the client and offer names
// joined in through the subscription
type PaymentResponse struct {
	ID           int64   `json:"id"`
	AbonnementID int64   `json:"abonnement_id"`
	ClientNom    string  `json:"client_nom"`
	OffreNom     string  `json:"offre_nom"`
	Montant      float64 `json:"montant"`
	DatePaiement string  `json:"date_paiement"`
}

// PaymentListResponse represents a paginated list of payments
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}

// PaymentStatsResponse is the unpaginated listing served under /stats
type PaymentStatsResponse struct {
	Paiements []PaymentResponse `json:"paiements"`
}
