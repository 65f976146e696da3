package crdt

import "iter"

// Structs

// Entry is the read-only view of one active entry.
// Name is empty if no name contribution is present.
type Entry struct {
	ID    int
	Name  string
	State CompletionState
}

// SharedList derives one consistent to-do list from the
// timestamped edits of many users. It owns all merge sets,
// pending edits and derived flags; instances are independent
// of each other.
type SharedList struct {
	entries map[int]*entry
	order   []int
	users   map[int]*user
	count   int
}

// entry carries the merge state of one entry and the
// flags derived from its winning values.
type entry struct {
	changes *EntryChanges
	added   bool
	done    bool
}

// user carries whether a user may contribute and the
// pending edits per entry in the order they were touched.
type user struct {
	allowed bool
	edits   map[int]*PendingEdits
	order   []int
}

// Functions

// NewSharedList returns an empty list.
func NewSharedList() *SharedList {

	return &SharedList{
		entries: make(map[int]*entry),
		users:   make(map[int]*user),
	}
}

// AddEntry records that userID added entry entryID with
// the given name at timestamp ts.
func (l *SharedList) AddEntry(entryID int, userID int, name string, ts int64) error {

	e := l.entry(entryID)
	l.user(userID)

	err := l.updateField(entryID, userID, NewExistenceChange(Added, ts))
	if err != nil {
		return err
	}

	err = l.updateField(entryID, userID, NewNameChange(name, ts))
	if err != nil {
		return err
	}

	l.refreshExistence(e)

	return nil
}

// RemoveEntry records that userID removed entry
// entryID at timestamp ts.
func (l *SharedList) RemoveEntry(entryID int, userID int, ts int64) error {

	e := l.entry(entryID)
	l.user(userID)

	err := l.updateField(entryID, userID, NewExistenceChange(Removed, ts))
	if err != nil {
		return err
	}

	l.refreshExistence(e)

	return nil
}

// MarkDone records that userID ticked off
// entry entryID at timestamp ts.
func (l *SharedList) MarkDone(entryID int, userID int, ts int64) error {
	return l.mark(entryID, userID, Done, ts)
}

// MarkUndone records that userID reopened
// entry entryID at timestamp ts.
func (l *SharedList) MarkUndone(entryID int, userID int, ts int64) error {
	return l.mark(entryID, userID, Undone, ts)
}

func (l *SharedList) mark(entryID int, userID int, state CompletionState, ts int64) error {

	e := l.entry(entryID)
	l.user(userID)

	err := l.updateField(entryID, userID, NewCompletionChange(state, ts))
	if err != nil {
		return err
	}

	l.refreshCompletion(e)

	return nil
}

// DismissUser stops userID from contributing. All of the
// user's active contributions are retracted; the pending
// edits stay for a later AllowUser.
func (l *SharedList) DismissUser(userID int) error {

	u := l.user(userID)
	u.allowed = false

	for _, entryID := range u.order {

		edits := u.edits[entryID]
		e := l.entries[entryID]

		for _, f := range []Field{Existence, Completion, Name} {

			prev, ok := edits.Get(f)
			if !ok {
				continue
			}

			set := e.changes.set(f)
			if !set.Contains(userID, prev) {
				continue
			}

			if err := set.Retract(userID, prev); err != nil {
				return err
			}
		}

		l.refreshExistence(e)
		l.refreshCompletion(e)
	}

	return nil
}

// AllowUser lets userID contribute again and replays the
// user's pending edits per entry through the public
// operations at their original timestamps: the name first,
// then completion, then existence. Replaying a name goes
// through AddEntry and therefore also asserts Added at the
// name's timestamp.
func (l *SharedList) AllowUser(userID int) error {

	u := l.user(userID)
	u.allowed = true

	for _, entryID := range u.order {
		if err := l.replay(entryID, userID, u.edits[entryID]); err != nil {
			return err
		}
	}

	return nil
}

func (l *SharedList) replay(entryID int, userID int, edits *PendingEdits) error {

	if name, ok := edits.Get(Name); ok {

		err := l.AddEntry(entryID, userID, name.Name(), name.Timestamp())
		if err != nil {
			return err
		}
	}

	if state, ok := edits.Get(Completion); ok {

		err := l.mark(entryID, userID, state.Completion(), state.Timestamp())
		if err != nil {
			return err
		}
	}

	// Read again: the name replay above may have
	// superseded the pending existence edit.
	existence, ok := edits.Get(Existence)
	if !ok {
		return nil
	}

	if existence.Existence() == Removed {
		return l.RemoveEntry(entryID, userID, existence.Timestamp())
	}

	name, ok := edits.Get(Name)
	if !ok {
		return &InvalidOperationError{UserID: userID, Op: "replay an unnamed addition"}
	}

	return l.AddEntry(entryID, userID, name.Name(), existence.Timestamp())
}

// Count returns the number of active entries.
func (l *SharedList) Count() int {
	return l.count
}

// Entries yields all active entries in the order they
// were first referenced. Each iteration reflects the
// state at the time it runs.
func (l *SharedList) Entries() iter.Seq[Entry] {

	return func(yield func(Entry) bool) {

		for _, id := range l.order {

			e := l.entries[id]
			if !e.added {
				continue
			}

			if !yield(l.view(id, e)) {
				return
			}
		}
	}
}

// Entry returns the view of entry id if it is active.
func (l *SharedList) Entry(id int) (Entry, bool) {

	e, found := l.entries[id]
	if !found || !e.added {
		return Entry{}, false
	}

	return l.view(id, e), true
}

func (l *SharedList) view(id int, e *entry) Entry {

	v := Entry{ID: id, State: Undone}

	if e.done {
		v.State = Done
	}

	if name, ok := e.changes.Names.Winner(); ok {
		v.Name = name.Name()
	}

	return v
}

// entry returns the state of entry id, creating it on
// first reference.
func (l *SharedList) entry(id int) *entry {

	e, found := l.entries[id]
	if !found {

		e = &entry{changes: NewEntryChanges()}
		l.entries[id] = e
		l.order = append(l.order, id)
	}

	return e
}

// user returns the state of user id, creating an
// allowed user on first reference.
func (l *SharedList) user(id int) *user {

	u, found := l.users[id]
	if !found {

		u = &user{
			allowed: true,
			edits:   make(map[int]*PendingEdits),
		}
		l.users[id] = u
	}

	return u
}

// knownUser returns the state of user id and fails
// if the user has not been initialized yet.
func (l *SharedList) knownUser(id int, op string) (*user, error) {

	u, found := l.users[id]
	if !found {
		return nil, &InvalidOperationError{UserID: id, Op: op}
	}

	return u, nil
}

// updateField records change as pending edit of userID
// on entryID. If the user holds an active contribution for
// that field it is retracted first, and an allowed user's
// resulting pending edit is inserted into the merge set.
func (l *SharedList) updateField(entryID int, userID int, change Change) error {

	u, err := l.knownUser(userID, "update "+change.Field().String())
	if err != nil {
		return err
	}

	edits, found := u.edits[entryID]
	if !found {

		edits = new(PendingEdits)
		u.edits[entryID] = edits
		u.order = append(u.order, entryID)
	}

	set := l.entry(entryID).changes.set(change.Field())

	prev, had := edits.Get(change.Field())
	active := had && set.Contains(userID, prev)
	changed := edits.Update(change)

	// The current pending edit already contributes.
	if active && !changed && u.allowed {
		return nil
	}

	if active {
		if err := set.Retract(userID, prev); err != nil {
			return err
		}
	}

	if u.allowed {
		cur, _ := edits.Get(change.Field())
		set.Add(userID, cur)
	}

	return nil
}

func (l *SharedList) refreshExistence(e *entry) {

	winner, ok := e.changes.Existence.Winner()
	added := ok && winner.Existence() == Added

	if added != e.added {

		if added {
			l.count++
		} else {
			l.count--
		}

		e.added = added
	}
}

func (l *SharedList) refreshCompletion(e *entry) {

	winner, ok := e.changes.Completion.Winner()
	e.done = ok && winner.Completion() == Done
}
