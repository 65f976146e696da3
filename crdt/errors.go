package crdt

import "fmt"

// InvalidOperationError is returned when an internal update
// path runs for a user the list has not initialized. The
// public operations always initialize users first, so this
// signals misuse inside the package.
type InvalidOperationError struct {
	UserID int
	Op     string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("cannot %s for uninitialized user %d", e.Op, e.UserID)
}

// ConsistencyError is returned when a contribution that the
// bookkeeping expects to be present in a merge set is not.
type ConsistencyError struct {
	Field  Field
	UserID int
	Change Change
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("no %s contribution %s by user %d to retract", e.Field, e.Change, e.UserID)
}
