package crdt_test

import (
	"testing"

	"github.com/go-pluto/todolist/crdt"
)

// Functions

// TestChangeString executes a black-box unit test
// on implemented String() functionality.
func TestChangeString(t *testing.T) {

	tests := []struct {
		change   crdt.Change
		expected string
	}{
		{crdt.NewExistenceChange(crdt.Added, 1), "existence:added@1"},
		{crdt.NewExistenceChange(crdt.Removed, -4), "existence:removed@-4"},
		{crdt.NewCompletionChange(crdt.Done, 12), "completion:done@12"},
		{crdt.NewCompletionChange(crdt.Undone, 0), "completion:undone@0"},
		{crdt.NewNameChange("buy | milk", 7), "name:\"buy | milk\"@7"},
	}

	for _, test := range tests {

		if marshalled := test.change.String(); marshalled != test.expected {
			t.Fatalf("[crdt.TestChangeString] Expected '%s' but got '%s'\n", test.expected, marshalled)
		}
	}
}

// TestChangeField checks that the field of a change
// is fixed by the constructor it was built with.
func TestChangeField(t *testing.T) {

	if f := crdt.NewNameChange("x", 1).Field(); f != crdt.Name {
		t.Fatalf("[crdt.TestChangeField] Expected name field but got %s\n", f)
	}

	if f := crdt.NewCompletionChange(crdt.Done, 1).Field(); f != crdt.Completion {
		t.Fatalf("[crdt.TestChangeField] Expected completion field but got %s\n", f)
	}

	c := crdt.NewExistenceChange(crdt.Removed, 3)
	if c.Field() != crdt.Existence || c.Existence() != crdt.Removed || c.Timestamp() != 3 {
		t.Fatalf("[crdt.TestChangeField] Expected removed existence change at 3 but got %s\n", c)
	}
}
