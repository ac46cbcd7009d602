package domain

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNotFound    = errors.New("politician not found")
	ErrConflict    = errors.New("politician already exists")
	ErrEmptyUpdate = errors.New("update payload contains no fields")
	ErrInvalidQuery = errors.New("search query must be 1-100 characters of letters, digits, spaces, hyphens, apostrophes, or periods")
)

var queryPattern = regexp.MustCompile(`^[A-Za-z0-9 .'-]{1,100}$`)

// ValidateSearchQuery enforces the free-text query constraints before
// any storage access happens.
func ValidateSearchQuery(q string) error {
	if strings.TrimSpace(q) == "" || !queryPattern.MatchString(q) {
		return ErrInvalidQuery
	}
	return nil
}
