package dto

import "time"

// LogResponse represents an audit log entry
type LogResponse struct {
	ID            int64                  `json:"id"`
	TableModifiee string                 `json:"table_modifiee"`
	Action        string                 `json:"action"`
	DateAction    time.Time              `json:"date_action"`
	Donnees       map[string]interface{} `json:"donnees"`
}

// LogListResponse represents a paginated list of audit log entries
type LogListResponse struct {
	Items      []LogResponse  `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
