package service

// ServiceError carries the HTTP status code the boundary layer should answer
// with, alongside the client-facing message.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}
