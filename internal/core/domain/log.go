package domain

import "time"

type LogAction string

const (
	LogActionInsert LogAction = "INSERT"
	LogActionUpdate LogAction = "UPDATE"
	LogActionDelete LogAction = "DELETE"
)

// Log is an audit entry written by the database trigger. The application
// only ever reads these rows.
type Log struct {
	ID         int64                  `db:"id"`
	TableName  string                 `db:"table_modifiee"`
	Action     LogAction              `db:"action"`
	ActionDate time.Time              `db:"date_action"`
	Data       map[string]interface{} `db:"donnees"` // JSON row snapshot
}
