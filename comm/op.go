package comm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Constants

// Kinds of operations understood on the wire.
const (
	Add     Kind = "add"
	Remove  Kind = "rmv"
	Done    Kind = "done"
	Undone  Kind = "undone"
	Dismiss Kind = "dismiss"
	Allow   Kind = "allow"
)

// Structs

// Kind names the operation an Op carries.
type Kind string

// Op is one decoded edit or permission change. EntryID,
// Timestamp and Name are only meaningful for the kinds
// that carry them.
type Op struct {
	Kind      Kind
	EntryID   int
	UserID    int
	Timestamp int64
	Name      string
}

// Functions

// String marshals op into its wire representation:
//
//	add|entry|user|ts|name
//	rmv|entry|user|ts  (same for done and undone)
//	dismiss|user       (same for allow)
func (op *Op) String() string {

	switch op.Kind {
	case Add:
		return fmt.Sprintf("%s|%d|%d|%d|%s", op.Kind, op.EntryID, op.UserID, op.Timestamp, op.Name)
	case Dismiss, Allow:
		return fmt.Sprintf("%s|%d", op.Kind, op.UserID)
	default:
		return fmt.Sprintf("%s|%d|%d|%d", op.Kind, op.EntryID, op.UserID, op.Timestamp)
	}
}

// Parse takes in the marshalled version of an operation
// and turns it back into an Op. Names are taken verbatim
// and may contain further pipe symbols.
func Parse(raw string) (*Op, error) {

	raw = strings.TrimRight(raw, "\r\n")

	kind, rest, _ := strings.Cut(raw, "|")
	op := &Op{Kind: Kind(kind)}

	var parts []string

	switch op.Kind {
	case Add:
		parts = strings.SplitN(rest, "|", 4)
		if len(parts) != 4 {
			return nil, errors.Errorf("add operation needs entry, user, timestamp and name: '%s'", raw)
		}
		op.Name = parts[3]
	case Remove, Done, Undone:
		parts = strings.Split(rest, "|")
		if len(parts) != 3 {
			return nil, errors.Errorf("%s operation needs entry, user and timestamp: '%s'", kind, raw)
		}
	case Dismiss, Allow:
		if rest == "" || strings.Contains(rest, "|") {
			return nil, errors.Errorf("%s operation needs exactly one user: '%s'", kind, raw)
		}

		userID, err := strconv.Atoi(rest)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid user ID in '%s'", raw)
		}
		op.UserID = userID

		return op, nil
	default:
		return nil, errors.Errorf("unsupported operation '%s'", kind)
	}

	entryID, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid entry ID in '%s'", raw)
	}

	userID, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user ID in '%s'", raw)
	}

	ts, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timestamp in '%s'", raw)
	}

	op.EntryID = entryID
	op.UserID = userID
	op.Timestamp = ts

	return op, nil
}
