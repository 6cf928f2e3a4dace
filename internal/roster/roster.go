// Package roster loads the staff roster spreadsheet and matches submissions against it.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Default header names looked up in the roster's first row.
const (
	DefaultNameColumn   = "Name"
	DefaultNumberColumn = "Staff Number"
)

var (
	// ErrUnsupportedFormat is returned for roster files that are not xlsx, xlsm or csv.
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	// ErrMissingColumn is returned when the header row lacks a configured column.
	ErrMissingColumn = errors.New("roster column not found")
)

// Entry is one roster row.
type Entry struct {
	Name        string `json:"name"`
	StaffNumber string `json:"staff_number"`
	// Row is the 1-based spreadsheet row, header included.
	Row int `json:"row"`
}

// Options selects the sheet and columns to read.
type Options struct {
	Sheet        string
	NameColumn   string
	NumberColumn string
}

func (o Options) withDefaults() Options {
	if o.NameColumn == "" {
		o.NameColumn = DefaultNameColumn
	}
	if o.NumberColumn == "" {
		o.NumberColumn = DefaultNumberColumn
	}
	return o
}

// Roster is an immutable, concurrency-safe set of roster entries.
type Roster struct {
	entries []Entry
	index   map[key][]int
}

type key struct {
	name   string
	number string
}

func normalize(name, number string) key {
	return key{
		name:   strings.ToLower(strings.TrimSpace(name)),
		number: strings.ToUpper(strings.TrimSpace(number)),
	}
}

// New builds a roster from entries, keeping their order.
func New(entries []Entry) *Roster {
	r := &Roster{
		entries: make([]Entry, len(entries)),
		index:   make(map[key][]int, len(entries)),
	}
	copy(r.entries, entries)
	for i, e := range r.entries {
		k := normalize(e.Name, e.StaffNumber)
		r.index[k] = append(r.index[k], i)
	}
	return r
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all entries in roster order.
func (r *Roster) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Match returns every entry whose name equals fullName case-insensitively and
// whose staff number equals staffNumber after uppercasing, in roster order.
func (r *Roster) Match(fullName, staffNumber string) []Entry {
	idx := r.index[normalize(fullName, staffNumber)]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.entries[i])
	}
	return out
}

// Load reads a roster from an .xlsx, .xlsm or .csv file.
func Load(path string, opts Options) (*Roster, error) {
	opts = opts.withDefaults()

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path, opts.Sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	entries, err := parseRows(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(entries), nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("roster workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read roster sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster csv: %w", err)
	}
	return rows, nil
}

func parseRows(rows [][]string, opts Options) ([]Entry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty roster", ErrMissingColumn)
	}

	nameCol, numberCol := -1, -1
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		switch {
		case strings.EqualFold(h, opts.NameColumn) && nameCol < 0:
			nameCol = i
		case strings.EqualFold(h, opts.NumberColumn) && numberCol < 0:
			numberCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.NameColumn)
	}
	if numberCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.NumberColumn)
	}

	entries := make([]Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		name := cell(row, nameCol)
		number := cell(row, numberCol)
		if name == "" || number == "" {
			continue
		}
		entries = append(entries, Entry{Name: name, StaffNumber: number, Row: i + 2})
	}
	return entries, nil
}

// cell returns the trimmed value at col; short rows yield "".
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
