package crdt

// Interfaces

// changeSet is the field-independent view on a
// MergeSet the list orchestrator works against.
type changeSet interface {
	Field() Field
	Contains(userID int, change Change) bool
	Add(userID int, change Change)
	Retract(userID int, change Change) error
	Winner() (Change, bool)
}

// Structs

// EntryChanges bundles the merge sets of
// the three fields of one entry.
type EntryChanges struct {
	Existence  *MergeSet[ExistenceState]
	Completion *MergeSet[CompletionState]
	Names      *MergeSet[string]
}

// Functions

// NewEntryChanges returns empty merge sets for one entry.
func NewEntryChanges() *EntryChanges {

	return &EntryChanges{
		Existence:  NewExistenceSet(),
		Completion: NewCompletionSet(),
		Names:      NewNameSet(),
	}
}

// set returns the merge set responsible for field f.
func (e *EntryChanges) set(f Field) changeSet {

	switch f {
	case Existence:
		return e.Existence
	case Completion:
		return e.Completion
	default:
		return e.Names
	}
}
