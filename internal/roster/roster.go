// Package roster reads the list of people from a delimited file.
package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/openspace/preference"
)

// NameColumn is the header selecting the name column, matched
// case-insensitively. Without it the first column is used.
const NameColumn = "Name"

var (
	// ErrDuplicateName indicates a name listed twice.
	ErrDuplicateName = errors.New("roster: duplicate name")

	// ErrEmpty indicates a file without a header row.
	ErrEmpty = errors.New("roster: file is empty")
)

// Load reads the roster file at path.
func Load(path string) ([]preference.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	people, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return people, nil
}

// Read parses a CSV roster with a header row. Blank names are skipped and
// surrounding spaces trimmed.
func Read(r io.Reader) ([]preference.Person, error) {
	people, _, _, err := read(r)

	return people, err
}

// read returns the people, the header and the name column index.
func read(r io.Reader) ([]preference.Person, []string, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, 0, ErrEmpty
	}
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read header: %w", err)
	}
	col := 0
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), NameColumn) {
			col = i
			break
		}
	}

	var people []preference.Person
	seen := make(map[preference.Person]bool)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, 0, fmt.Errorf("read row: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		name := preference.Person(strings.TrimSpace(rec[col]))
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, nil, 0, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[name] = true
		people = append(people, name)
	}

	return people, header, col, nil
}

// Append adds a name to the roster file at path, in the name column. The
// file must exist and the name must not be listed yet.
func Append(path string, name preference.Person) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}
	people, header, col, err := read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	name = preference.Person(strings.TrimSpace(string(name)))
	if name == "" {
		return preference.ErrEmptyName
	}
	for _, p := range people {
		if p == name {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}

	var buf bytes.Buffer
	if len(data) > 0 && data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	rec := make([]string, len(header))
	rec[col] = string(name)
	w := csv.NewWriter(&buf)
	if err = w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}
	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
