package list

import (
	"slices"
	"sync"

	"github.com/go-pluto/todolist/crdt"
	uuid "github.com/satori/go.uuid"
)

// Interfaces

// Service defines the operations a replica of
// the shared to-do list provides.
type Service interface {

	// Name identifies this replica in logs.
	Name() string

	// AddEntry records that a user created or renamed
	// an entry at the given timestamp.
	AddEntry(entryID int, userID int, name string, ts int64) error

	// RemoveEntry records that a user deleted an entry.
	RemoveEntry(entryID int, userID int, ts int64) error

	// MarkDone records that a user ticked off an entry.
	MarkDone(entryID int, userID int, ts int64) error

	// MarkUndone records that a user reopened an entry.
	MarkUndone(entryID int, userID int, ts int64) error

	// DismissUser retracts all contributions of a user
	// until the user is allowed again.
	DismissUser(userID int) error

	// AllowUser restores a dismissed user and replays
	// the user's latest edits.
	AllowUser(userID int) error

	// Count returns the number of active entries.
	Count() int

	// Entries returns a snapshot of all active entries
	// in the order they were first referenced.
	Entries() []crdt.Entry

	// Entry returns one active entry.
	Entry(entryID int) (crdt.Entry, bool)
}

// Structs

type service struct {
	lock *sync.Mutex
	name string
	list *crdt.SharedList
}

// Functions

// NewService returns a Service backed by an empty list.
// If name is empty, a random replica name is generated.
func NewService(name string) Service {

	if name == "" {
		name = uuid.NewV4().String()
	}

	return &service{
		lock: new(sync.Mutex),
		name: name,
		list: crdt.NewSharedList(),
	}
}

func (s *service) Name() string {
	return s.name
}

func (s *service) AddEntry(entryID int, userID int, name string, ts int64) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.AddEntry(entryID, userID, name, ts)
}

func (s *service) RemoveEntry(entryID int, userID int, ts int64) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.RemoveEntry(entryID, userID, ts)
}

func (s *service) MarkDone(entryID int, userID int, ts int64) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.MarkDone(entryID, userID, ts)
}

func (s *service) MarkUndone(entryID int, userID int, ts int64) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.MarkUndone(entryID, userID, ts)
}

func (s *service) DismissUser(userID int) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.DismissUser(userID)
}

func (s *service) AllowUser(userID int) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.AllowUser(userID)
}

func (s *service) Count() int {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Count()
}

func (s *service) Entries() []crdt.Entry {

	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Collect(s.list.Entries())
}

func (s *service) Entry(entryID int) (crdt.Entry, bool) {

	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list.Entry(entryID)
}
