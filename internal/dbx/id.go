package dbx

import "github.com/google/uuid"

// NewID returns a time-ordered (v7) UUID string, so ordering rows by id
// orders them by creation.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidID reports whether s is a well-formed UUID.
func ValidID(s string) bool {
	return uuid.Validate(s) == nil
}
