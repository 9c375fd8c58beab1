package domain

// DeleteOutcome reports what happened to a delete request. A missing row and
// a row kept alive by dependents both refuse the delete, but the API must
// answer 404 for one and 409 for the other.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted  DeleteOutcome = "deleted"
	DeleteOutcomeNotFound DeleteOutcome = "not_found"
	DeleteOutcomeBlocked  DeleteOutcome = "blocked"
)
