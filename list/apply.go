package list

import (
	"github.com/go-pluto/todolist/comm"
	"github.com/pkg/errors"
)

// Apply executes one decoded operation against s.
func Apply(s Service, op *comm.Op) error {

	switch op.Kind {
	case comm.Add:
		return s.AddEntry(op.EntryID, op.UserID, op.Name, op.Timestamp)
	case comm.Remove:
		return s.RemoveEntry(op.EntryID, op.UserID, op.Timestamp)
	case comm.Done:
		return s.MarkDone(op.EntryID, op.UserID, op.Timestamp)
	case comm.Undone:
		return s.MarkUndone(op.EntryID, op.UserID, op.Timestamp)
	case comm.Dismiss:
		return s.DismissUser(op.UserID)
	case comm.Allow:
		return s.AllowUser(op.UserID)
	}

	return errors.Errorf("unsupported operation '%s'", op.Kind)
}

// ApplyAll executes ops in order and stops at the first
// failure. It returns the number of operations applied.
func ApplyAll(s Service, ops []*comm.Op) (int, error) {

	for i, op := range ops {

		if err := Apply(s, op); err != nil {
			return i, errors.Wrapf(err, "applying operation %d '%s'", i, op)
		}
	}

	return len(ops), nil
}
