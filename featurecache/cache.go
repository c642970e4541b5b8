package featurecache

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultDim is the vector length of the stock CNN feature caches.
const DefaultDim = 512

// Row is one cached image.
type Row struct {
	ID     string
	Vector []float64
}

// Cache is an ordered, immutable set of rows.
type Cache struct {
	dim  int
	rows []Row
}

// Dim returns the vector length shared by all rows.
func (c *Cache) Dim() int { return c.dim }

// Len returns the number of rows.
func (c *Cache) Len() int { return len(c.rows) }

// Rows returns the rows in file order. Callers must not modify them.
func (c *Cache) Rows() []Row { return c.rows }

// Lookup returns the first row whose identifier equals id byte for byte.
func (c *Cache) Lookup(id string) (Row, error) {
	for _, r := range c.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return Row{}, &NotFoundError{ID: id}
}

// Load parses a cache of dim-sized vectors from r.
// Blank lines are ignored. Quoted identifiers are allowed.
func Load(r io.Reader, dim int) (*Cache, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("featurecache: invalid dimension %d", dim)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	c := &Cache{dim: dim}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedError{Line: pe.Line, Expected: dim + 1, Err: pe.Err}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		row, err := parseRow(rec, dim, line)
		if err != nil {
			return nil, err
		}
		c.rows = append(c.rows, row)
	}

	return c, nil
}

func parseRow(rec []string, dim, line int) (Row, error) {
	if len(rec) != dim+1 {
		return Row{}, &MalformedError{Line: line, Fields: len(rec), Expected: dim + 1}
	}

	row := Row{ID: rec[0], Vector: make([]float64, dim)}
	for i, s := range rec[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Row{}, &MalformedError{
				Line:     line,
				Fields:   len(rec),
				Expected: dim + 1,
				Err:      fmt.Errorf("column %d: %w", i+2, err),
			}
		}
		row.Vector[i] = v
	}

	return row, nil
}
