package util

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePage parses the page query parameter. Anything that is not a positive
// integer falls back to the first page.
func ParsePage(value string) int {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// ParseLimit parses the limit query parameter, bounded to MaxLimit.
func ParseLimit(value string) int {
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Offset converts a 1-based page number to a row offset. There is no upper
// clamp: a page past the end simply yields an empty result list.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
