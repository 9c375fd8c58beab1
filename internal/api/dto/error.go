package dto

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MessageResponse acknowledges a successful delete
type MessageResponse struct {
	Message string `json:"message"`
}
