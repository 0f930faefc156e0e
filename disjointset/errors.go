package disjointset

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfUnion is returned when Unite is called with a == b.
	ErrSelfUnion = errors.New("uniting an element with itself is meaningless")
	// ErrNegativeElement is returned when an element is negative.
	ErrNegativeElement = errors.New("element must be non-negative")
)

// ErrDuplicateElement indicates a MakeSet call for an element that is
// already part of the universe.
type ErrDuplicateElement struct {
	Element int
}

func (e *ErrDuplicateElement) Error() string {
	return fmt.Sprintf("element %d already present in the universe", e.Element)
}

// ErrUnknownElement indicates a reference to an element that was never
// added to the universe.
type ErrUnknownElement struct {
	Element int
}

func (e *ErrUnknownElement) Error() string {
	return fmt.Sprintf("element %d is not part of the universe", e.Element)
}
