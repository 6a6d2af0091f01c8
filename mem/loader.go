package mem

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// sectionHeader matches a relation declaration line: "name( a1, a2, a3 )" —
// name, "(", a single space, an optional comma-space-separated attribute
// list, a single space, ")". A nullary relation's header is "name(  )" —
// the two literal spaces with nothing between them.
var sectionHeader = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\( ([A-Za-z_][A-Za-z0-9_]*(?:, [A-Za-z_][A-Za-z0-9_]*)*)? \)$`)

// LoadDatabase reads the plain-text database dump format: a sequence of
// sections, each a "name( a1, a2, ... )" header line followed by
// whitespace-separated record lines, up to the next header or EOF.
func LoadDatabase(r io.Reader) (*Database, error) {
	db := NewDatabase()
	scanner := bufio.NewScanner(r)
	var current *Table

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			name := m[1]
			if db.Has(name) {
				return nil, ErrIO.New(fmt.Sprintf("relation %q declared more than once", name))
			}
			var attrs []string
			if m[2] != "" {
				attrs = strings.Split(m[2], ", ")
			}
			current = NewTable(name, attrs)
			db.Put(current)
			continue
		}

		if current == nil {
			return nil, ErrIO.New(fmt.Sprintf("record line before any relation header: %q", line))
		}

		tokens := strings.Fields(line)
		if len(tokens) != len(current.Attributes) {
			return nil, ErrSchema.New(fmt.Sprintf(
				"relation %q: record %q has %d fields, want %d",
				current.Name, line, len(tokens), len(current.Attributes)))
		}
		record := make([]Value, len(tokens))
		for i, tok := range tokens {
			v, err := cast.ToUint64E(tok)
			if err != nil {
				return nil, ErrIO.New(fmt.Sprintf("relation %q: %s", current.Name, err))
			}
			record[i] = v
		}
		current.Records = append(current.Records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrIO.Wrap(err)
	}
	return db, nil
}
