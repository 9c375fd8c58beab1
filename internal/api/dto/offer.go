package dto

// CreateOfferRequest represents the offer creation request
type CreateOfferRequest struct {
	Nom       string `json:"nom" binding:"required"`
	DebitMbps *int   `json:"debit_mbps,omitempty"`
	Prix      *int   `json:"prix,omitempty"`
}

// UpdateOfferRequest represents the offer update request. Omitted fields keep
// their stored values.
type UpdateOfferRequest struct {
	Nom       *string `json:"nom,omitempty"`
	DebitMbps *int    `json:"debit_mbps,omitempty"`
	Prix      *int    `json:"prix,omitempty"`
}

// OfferResponse represents an offer
type OfferResponse struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	DebitMbps *int   `json:"debit_mbps"`
	Prix      *int   `json:"prix"`
}

// OfferListResponse represents a paginated list of offers
type OfferListResponse struct {
	Items      []OfferResponse `json:"items"`
	Pagination PaginationInfo  `json:"pagination"`
}
