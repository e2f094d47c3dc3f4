// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/dapfront/pareto"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrFormat is returned when a stored file cannot be parsed.
var ErrFormat = errors.New("store: bad format")

// Well-known locations relative to the root.
const (
	ApproxDir = "pareto/approx"
	ExactDir  = "pareto/exact"
	StatsDir  = "pareto/stats"
	TimingDir = "timing/approx"
)

const pointsHeader = "cost,diversity"

// Store reads and writes below Root. Appends are serialized; whole-file
// writes replace the target atomically via a temporary file.
type Store struct {
	Root string

	mu sync.Mutex
}

// New returns a Store rooted at root.
func New(root string) *Store {
	return &Store{Root: root}
}

// Path returns the file path for rel.
func (s *Store) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel)+".csv")
}

// Exists reports whether rel has been written.
func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WritePoints stores pts with a "cost,diversity" header.
func (s *Store) WritePoints(rel string, pts []pareto.Point) error {
	rows := make([][]string, 0, len(pts)+1)
	rows = append(rows, strings.Split(pointsHeader, ","))
	for _, p := range pts {
		rows = append(rows, []string{formatFloat(p.Cost), formatFloat(p.Diversity)})
	}

	return s.writeAll(rel, rows)
}

// ReadPoints loads a file written by WritePoints.
func (s *Store) ReadPoints(rel string) ([]pareto.Point, error) {
	rows, err := s.readAll(rel)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || strings.Join(rows[0], ",") != pointsHeader {
		return nil, fmt.Errorf("store: %s: missing %q header: %w", rel, pointsHeader, ErrFormat)
	}

	pts := make([]pareto.Point, 0, len(rows)-1)
	for i, row := range rows[1:] {
		vals, perr := parseRow(row)
		if perr != nil || len(vals) != 2 {
			return nil, fmt.Errorf("store: %s line %d: %w", rel, i+2, ErrFormat)
		}
		pts = append(pts, pareto.Point{Cost: vals[0], Diversity: vals[1]})
	}

	return pts, nil
}

// WriteArray stores a numeric table, one row per line.
func (s *Store) WriteArray(rel string, table [][]float64) error {
	rows := make([][]string, len(table))
	for i, r := range table {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = formatFloat(v)
		}
	}

	return s.writeAll(rel, rows)
}

// ReadArray loads a table written by WriteArray. Rows may differ in length.
func (s *Store) ReadArray(rel string) ([][]float64, error) {
	rows, err := s.readAll(rel)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if out[i], err = parseRow(row); err != nil {
			return nil, fmt.Errorf("store: %s line %d: %w: %w", rel, i+1, ErrFormat, err)
		}
	}

	return out, nil
}

// AppendNum appends v as a new line of rel, creating the file if needed.
func (s *Store) AppendNum(rel string, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err = f.WriteString(formatFloat(v) + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: append %s: %w", rel, err)
	}

	return f.Close()
}

// ReadNums loads every value appended to rel, in order.
func (s *Store) ReadNums(rel string) ([]float64, error) {
	rows, err := s.readAll(rel)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		vals, perr := parseRow(row)
		if perr != nil || len(vals) != 1 {
			return nil, fmt.Errorf("store: %s line %d: %w", rel, i+1, ErrFormat)
		}
		out = append(out, vals[0])
	}

	return out, nil
}

func (s *Store) writeAll(rel string, rows [][]string) error {
	path := s.Path(rel)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := csv.NewWriter(tmp)
	if err = w.WriteAll(rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: write %s: %w", rel, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	return nil
}

func (s *Store) readAll(rel string) ([][]string, error) {
	f, err := os.Open(s.Path(rel))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store: %s: %w", rel, ErrNotFound)
		}
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		row, rerr := r.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("store: %s: %w: %w", rel, ErrFormat, rerr)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(row []string) ([]float64, error) {
	vals := make([]float64, len(row))
	for i, f := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	return vals, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
