package comm

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadOps scans r line by line and parses every line into
// an Op. Blank lines and lines starting with '#' are skipped.
func ReadOps(r io.Reader) ([]*Op, error) {

	ops := make([]*Op, 0, 16)

	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {

		line++

		// Names keep their whitespace, only the line is checked.
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		op, err := Parse(strings.TrimLeft(text, " \t"))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "experienced error while scanning operations")
	}

	return ops, nil
}
