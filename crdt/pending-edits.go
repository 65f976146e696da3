package crdt

// Structs

// PendingEdits remembers the latest edit one user
// attempted on each field of one entry, whether or not
// that user is currently allowed to contribute it.
type PendingEdits struct {
	edits [3]Change
	set   [3]bool
}

// Functions

// Get returns the pending edit for field f, if any.
func (p *PendingEdits) Get(f Field) (Change, bool) {
	return p.edits[f], p.set[f]
}

// Update records change as the pending edit of its field
// if it supersedes the current one and reports whether it
// did. A newer timestamp always supersedes. At an equal
// timestamp Removed and Undone supersede, and a name always
// does, so the latest submission wins locally.
func (p *PendingEdits) Update(change Change) bool {

	f := change.Field()

	if p.set[f] && !supersedes(change, p.edits[f]) {
		return false
	}

	p.edits[f] = change
	p.set[f] = true

	return true
}

func supersedes(next Change, prev Change) bool {

	if next.Timestamp() != prev.Timestamp() {
		return next.Timestamp() > prev.Timestamp()
	}

	switch next.Field() {
	case Existence:
		return next.Existence() == Removed
	case Completion:
		return next.Completion() == Undone
	default:
		return true
	}
}
