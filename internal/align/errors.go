package align

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoOverlap is returned when a member shares neither containment nor
	// an unambiguous suffix/prefix overlap with the reference. It means the
	// member got into the group without satisfying the group's relation.
	ErrNoOverlap = errors.New("no overlap found")

	// ErrInconsistentLength is returned when padded members don't all have
	// the same length.
	ErrInconsistentLength = errors.New("inconsistent alignment length")
)

// Error is a failure to align a single group.
type Error struct {
	// Group is the ID of the group that failed
	Group int

	// Reference is the sequence members were positioned against
	Reference string

	// Sequences are the group's member sequences, or the padded
	// sequences for ErrInconsistentLength
	Sequences []string

	// Err is ErrNoOverlap or ErrInconsistentLength, possibly wrapped
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("group %d (reference %s): %v [%s]", e.Group, e.Reference, e.Err, strings.Join(e.Sequences, " "))
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
