package items

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed itemsparse.csv
var itemSparse []byte

const (
	idColumn   = 0
	nameColumn = 6
)

// Names is an immutable item id to display name lookup. The zero value is
// an empty lookup.
type Names struct {
	byID map[int64]string
}

// Embedded returns the lookup built from the bundled dataset.
func Embedded() *Names {
	n, _ := Parse(bytes.NewReader(itemSparse))
	return n
}

// Load builds the lookup from the CSV file at path. An empty path selects
// the bundled dataset.
func Load(path string) (*Names, error) {
	if path == "" {
		return Embedded(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open item names: %w", err)
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read item names %s: %w", path, err)
	}
	return n, nil
}

// Parse reads item names from CSV. Rows whose id does not parse or which
// lack the name column are skipped, as are rows the CSV reader rejects.
// Only read failures from r itself are returned.
func Parse(r io.Reader) (*Names, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	byID := make(map[int64]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return &Names{byID: byID}, err
		}
		if len(record) <= nameColumn {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(record[idColumn]), 10, 64)
		if err != nil {
			continue
		}
		byID[id] = record[nameColumn]
	}

	return &Names{byID: byID}, nil
}

// Lookup returns the display name for id.
func (n *Names) Lookup(id int64) (string, bool) {
	if n == nil || n.byID == nil {
		return "", false
	}
	name, ok := n.byID[id]
	return name, ok
}

// Len returns the number of known items.
func (n *Names) Len() int {
	if n == nil {
		return 0
	}
	return len(n.byID)
}
