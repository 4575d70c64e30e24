// Package ids generates entity identifiers.
package ids

import "github.com/google/uuid"

// New returns a UUIDv7. Its leading bits are the wall clock in milliseconds,
// so ids sort by creation time within one process.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
