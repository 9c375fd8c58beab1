package dto

// Field names stay French on the wire: the admin client consuming this API
// predates the Go rewrite.

// CreateClientRequest represents the client creation request
type CreateClientRequest struct {
	Nom   string `json:"nom" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateClientRequest represents the client update request
type UpdateClientRequest struct {
	Nom   string `json:"nom" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ClientResponse represents a client
type ClientResponse struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Pagination PaginationInfo   `json:"pagination"`
}
