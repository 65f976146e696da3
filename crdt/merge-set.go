package crdt

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Structs

// Contribution is the value one user currently
// contributes to a field of an entry.
type Contribution[T comparable] struct {
	Value  T
	UserID int
}

// fieldKind binds a merge set to one field: how to
// read and rebuild the typed payload of a Change and
// which contribution wins among equal timestamps.
type fieldKind[T comparable] struct {
	field  Field
	value  func(Change) T
	change func(T, int64) Change
	before func(a, b Contribution[T]) bool
}

// MergeSet holds all active contributions to one field
// of one entry, bucketed by timestamp. A user is expected
// to be present at most once across all buckets: callers
// retract a user's old contribution before adding a new one.
type MergeSet[T comparable] struct {
	kind    fieldKind[T]
	stamps  []int64
	buckets map[int64]mapset.Set[Contribution[T]]
}

// Variables

var existenceKind = fieldKind[ExistenceState]{
	field:  Existence,
	value:  Change.Existence,
	change: NewExistenceChange,
	before: func(a, b Contribution[ExistenceState]) bool {
		if a.Value != b.Value {
			return a.Value == Removed
		}
		return a.UserID < b.UserID
	},
}

var completionKind = fieldKind[CompletionState]{
	field:  Completion,
	value:  Change.Completion,
	change: NewCompletionChange,
	before: func(a, b Contribution[CompletionState]) bool {
		if a.Value != b.Value {
			return a.Value == Undone
		}
		return a.UserID < b.UserID
	},
}

var nameKind = fieldKind[string]{
	field:  Name,
	value:  Change.Name,
	change: NewNameChange,
	before: func(a, b Contribution[string]) bool {
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		return a.Value < b.Value
	},
}

// Functions

// NewExistenceSet returns an empty merge set for the
// existence field. Removed beats Added at equal time,
// then the smaller user ID wins.
func NewExistenceSet() *MergeSet[ExistenceState] {
	return newMergeSet(existenceKind)
}

// NewCompletionSet returns an empty merge set for the
// completion field. Undone beats Done at equal time,
// then the smaller user ID wins.
func NewCompletionSet() *MergeSet[CompletionState] {
	return newMergeSet(completionKind)
}

// NewNameSet returns an empty merge set for the name
// field. The smaller user ID wins at equal time, then
// the lexicographically smaller name.
func NewNameSet() *MergeSet[string] {
	return newMergeSet(nameKind)
}

func newMergeSet[T comparable](kind fieldKind[T]) *MergeSet[T] {

	return &MergeSet[T]{
		kind:    kind,
		buckets: make(map[int64]mapset.Set[Contribution[T]]),
	}
}

// Field returns the field this set merges.
func (s *MergeSet[T]) Field() Field {
	return s.kind.field
}

// Contains reports whether user userID currently
// contributes exactly change to this set.
func (s *MergeSet[T]) Contains(userID int, change Change) bool {

	bucket, found := s.buckets[change.Timestamp()]
	if !found {
		return false
	}

	return bucket.Contains(s.contribution(userID, change))
}

// Add inserts change as the contribution of userID,
// creating the timestamp bucket if it does not exist yet.
func (s *MergeSet[T]) Add(userID int, change Change) {

	ts := change.Timestamp()

	bucket, found := s.buckets[ts]
	if !found {

		bucket = mapset.NewThreadUnsafeSet[Contribution[T]]()
		s.buckets[ts] = bucket

		// Keep timestamps sorted newest first.
		i, _ := slices.BinarySearchFunc(s.stamps, ts, descending)
		s.stamps = slices.Insert(s.stamps, i, ts)
	}

	bucket.Add(s.contribution(userID, change))
}

// Retract removes the contribution change of userID.
// It fails with a ConsistencyError if that contribution
// is not present. Empty buckets are dropped.
func (s *MergeSet[T]) Retract(userID int, change Change) error {

	if !s.Contains(userID, change) {
		return &ConsistencyError{
			Field:  s.kind.field,
			UserID: userID,
			Change: change,
		}
	}

	ts := change.Timestamp()
	bucket := s.buckets[ts]
	bucket.Remove(s.contribution(userID, change))

	if bucket.Cardinality() == 0 {

		delete(s.buckets, ts)

		i, _ := slices.BinarySearchFunc(s.stamps, ts, descending)
		s.stamps = slices.Delete(s.stamps, i, i+1)
	}

	return nil
}

// Winner resolves the current value of the field: the
// contribution with the newest timestamp, ties broken by
// the field's order. It returns false if the set is empty.
func (s *MergeSet[T]) Winner() (Change, bool) {

	if len(s.stamps) == 0 {
		return Change{}, false
	}

	ts := s.stamps[0]

	var best Contribution[T]
	first := true

	for _, c := range s.buckets[ts].ToSlice() {

		if first || s.kind.before(c, best) {
			best = c
			first = false
		}
	}

	return s.kind.change(best.Value, ts), true
}

// Len returns the number of contributions in the set.
func (s *MergeSet[T]) Len() int {

	n := 0
	for _, bucket := range s.buckets {
		n += bucket.Cardinality()
	}

	return n
}

func (s *MergeSet[T]) contribution(userID int, change Change) Contribution[T] {
	return Contribution[T]{Value: s.kind.value(change), UserID: userID}
}

func descending(elem int64, target int64) int {
	return cmp.Compare(target, elem)
}
