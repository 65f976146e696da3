package crdt

import "fmt"

// Constants

// Fields of an entry that edits can target.
const (
	Existence Field = iota
	Completion
	Name
)

// Values of the existence field.
const (
	Added ExistenceState = iota
	Removed
)

// Values of the completion field.
const (
	Undone CompletionState = iota
	Done
)

// Structs

// Field identifies which part of an entry a Change edits.
type Field int

// ExistenceState tells whether an entry is part of the list.
type ExistenceState int

// CompletionState tells whether an entry has been ticked off.
type CompletionState int

// Change is one timestamped edit of a single field. The
// field is fixed when the Change is constructed and only
// the matching payload accessor is meaningful. Changes are
// values: a new edit always produces a new Change.
type Change struct {
	field      Field
	existence  ExistenceState
	completion CompletionState
	name       string
	timestamp  int64
}

// Functions

// NewExistenceChange returns an edit of the existence field.
func NewExistenceChange(state ExistenceState, timestamp int64) Change {
	return Change{field: Existence, existence: state, timestamp: timestamp}
}

// NewCompletionChange returns an edit of the completion field.
func NewCompletionChange(state CompletionState, timestamp int64) Change {
	return Change{field: Completion, completion: state, timestamp: timestamp}
}

// NewNameChange returns an edit of the name field.
func NewNameChange(name string, timestamp int64) Change {
	return Change{field: Name, name: name, timestamp: timestamp}
}

// Field returns the field this change edits.
func (c Change) Field() Field {
	return c.field
}

// Existence returns the payload of an existence change.
func (c Change) Existence() ExistenceState {
	return c.existence
}

// Completion returns the payload of a completion change.
func (c Change) Completion() CompletionState {
	return c.completion
}

// Name returns the payload of a name change.
func (c Change) Name() string {
	return c.name
}

// Timestamp returns the time the edit was made at.
func (c Change) Timestamp() int64 {
	return c.timestamp
}

// String renders the change as field:value@timestamp.
func (c Change) String() string {

	switch c.field {
	case Existence:
		return fmt.Sprintf("%s:%s@%d", c.field, c.existence, c.timestamp)
	case Completion:
		return fmt.Sprintf("%s:%s@%d", c.field, c.completion, c.timestamp)
	default:
		return fmt.Sprintf("%s:%q@%d", c.field, c.name, c.timestamp)
	}
}

func (f Field) String() string {

	switch f {
	case Existence:
		return "existence"
	case Completion:
		return "completion"
	case Name:
		return "name"
	}

	return fmt.Sprintf("field(%d)", int(f))
}

func (s ExistenceState) String() string {

	if s == Removed {
		return "removed"
	}

	return "added"
}

func (s CompletionState) String() string {

	if s == Done {
		return "done"
	}

	return "undone"
}
