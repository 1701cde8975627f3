package music

import (
	"errors"
	"fmt"
)

// ErrNoMediaTypes is returned when a track is created while the media type
// vocabulary is empty. Seeding media types is a deployment concern, so this
// signals misconfiguration rather than bad input.
var ErrNoMediaTypes = errors.New("no media types configured")

// HasDependentsError is returned when a delete is refused because child rows
// still reference the entity. Callers delete or reassign the dependents first.
type HasDependentsError struct {
	Entity     string
	ID         int
	Dependents int
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: %d dependent rows exist", e.Entity, e.ID, e.Dependents)
}
