package comm_test

import (
	"strings"
	"testing"

	"github.com/go-pluto/todolist/comm"
	"github.com/stretchr/testify/assert"
)

// Functions

// TestString executes a black-box unit test
// on implemented String() functionality.
func TestString(t *testing.T) {

	tests := []struct {
		op       *comm.Op
		expected string
	}{
		{&comm.Op{Kind: comm.Add, EntryID: 1, UserID: 2, Timestamp: 10, Name: "buy milk"}, "add|1|2|10|buy milk"},
		{&comm.Op{Kind: comm.Add, EntryID: 1, UserID: 2, Timestamp: 10}, "add|1|2|10|"},
		{&comm.Op{Kind: comm.Remove, EntryID: 3, UserID: 4, Timestamp: -1}, "rmv|3|4|-1"},
		{&comm.Op{Kind: comm.Done, EntryID: 5, UserID: 6, Timestamp: 7}, "done|5|6|7"},
		{&comm.Op{Kind: comm.Undone, EntryID: 5, UserID: 6, Timestamp: 8}, "undone|5|6|8"},
		{&comm.Op{Kind: comm.Dismiss, UserID: 9}, "dismiss|9"},
		{&comm.Op{Kind: comm.Allow, UserID: 9}, "allow|9"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.op.String())
	}
}

// TestParse executes a black-box unit test
// on implemented Parse() functionality.
func TestParse(t *testing.T) {

	op, err := comm.Parse("add|1|2|10|milk | honey\n")
	assert.NoError(t, err)
	assert.Equal(t, &comm.Op{Kind: comm.Add, EntryID: 1, UserID: 2, Timestamp: 10, Name: "milk | honey"}, op)

	op, err = comm.Parse("add|1|2|10|")
	assert.NoError(t, err)
	assert.Equal(t, "", op.Name)

	op, err = comm.Parse("undone|4|5|6")
	assert.NoError(t, err)
	assert.Equal(t, &comm.Op{Kind: comm.Undone, EntryID: 4, UserID: 5, Timestamp: 6}, op)

	op, err = comm.Parse("allow|12")
	assert.NoError(t, err)
	assert.Equal(t, &comm.Op{Kind: comm.Allow, UserID: 12}, op)

	broken := []string{
		"",
		"||",
		"remove|1|2|3",
		"add|1|2|3",
		"rmv|1|2",
		"rmv|1|2|3|4",
		"done|a|2|3",
		"done|1|b|3",
		"done|1|2|c",
		"dismiss|",
		"dismiss|1|2",
		"allow|x",
	}

	for _, raw := range broken {
		_, err := comm.Parse(raw)
		assert.Error(t, err, "expected '%s' to be rejected", raw)
	}
}

// TestRoundTrip checks that marshalled operations parse
// back into what they were marshalled from.
func TestRoundTrip(t *testing.T) {

	ops := []*comm.Op{
		{Kind: comm.Add, EntryID: 100, UserID: 7, Timestamp: 1 << 40, Name: "☕ with | pipes"},
		{Kind: comm.Remove, EntryID: 100, UserID: 8, Timestamp: 1 << 40},
		{Kind: comm.Dismiss, UserID: 7},
	}

	for _, op := range ops {

		parsed, err := comm.Parse(op.String())
		assert.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
}

func TestReadOps(t *testing.T) {

	input := strings.Join([]string{
		"# weekly shopping",
		"add|1|1|10|buy milk ",
		"",
		"   done|1|2|11",
		"dismiss|2",
	}, "\n")

	ops, err := comm.ReadOps(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, ops, 3)
	assert.Equal(t, "buy milk ", ops[0].Name)
	assert.Equal(t, comm.Done, ops[1].Kind)
	assert.Equal(t, comm.Dismiss, ops[2].Kind)

	_, err = comm.ReadOps(strings.NewReader("add|1|1|10|x\nrmv|1|1\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
