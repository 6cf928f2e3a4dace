// Package csvstore keeps the CSV mirror of staff records.
package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jszwec/csvutil"

	"github.com/staff-data-intake/internal/models"
)

// Header returns the CSV column names in file order.
func Header() []string {
	header, err := csvutil.Header(models.StaffRecord{}, "csv")
	if err != nil {
		// StaffRecord tags are static; a failure here is a programming error.
		panic(fmt.Sprintf("csvstore: invalid StaffRecord tags: %v", err))
	}
	return header
}

// Writer encodes staff records as CSV rows.
type Writer struct {
	cw  *csv.Writer
	enc *csvutil.Encoder
}

// NewWriter returns a Writer that emits rows to w. The header is not written
// until WriteHeader is called.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false
	return &Writer{cw: cw, enc: enc}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.cw.Write(Header())
}

// Write encodes one record.
func (w *Writer) Write(rec *models.StaffRecord) error {
	return w.enc.Encode(rec)
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// Store is the CSV file holding one row per staff record.
// All file access goes through the store's mutex.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store for the CSV file at path. The file is not touched.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the CSV file location.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the parent directory and, when the file is absent or empty,
// writes the header row. Existing content is left untouched.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openAppend()
	if err != nil {
		return err
	}
	defer f.Close()

	empty, err := isEmpty(f)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	return f.Close()
}

// Append writes rec as a single row at the end of the file, adding the
// header first if the file is empty.
func (s *Store) Append(rec *models.StaffRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openAppend()
	if err != nil {
		return err
	}
	defer f.Close()

	empty, err := isEmpty(f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if empty {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	if err := w.Write(rec); err != nil {
		return fmt.Errorf("encode csv row: %w", err)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append csv row: %w", err)
	}
	return f.Close()
}

// ReadAll decodes every row in the file. A missing or empty file yields no records.
func (s *Store) ReadAll() ([]models.StaffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var records []models.StaffRecord
	if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}
	return records, nil
}

// Replace rewrites the whole file with the header followed by every record
// fill emits. Content is written to a temporary file in the same directory
// and renamed over the target, so readers see either the old or the new file.
func (s *Store) Replace(fill func(emit func(*models.StaffRecord) error) error) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create csv directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp csv: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	defer tmp.Close()

	w := NewWriter(tmp)
	if err := w.WriteHeader(); err != nil {
		return 0, err
	}

	count := 0
	err = fill(func(rec *models.StaffRecord) error {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("encode csv row: %w", err)
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("write temp csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp csv: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("chmod temp csv: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return 0, fmt.Errorf("replace csv: %w", err)
	}
	return count, nil
}

func (s *Store) openAppend() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create csv directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	return f, nil
}

func isEmpty(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat csv: %w", err)
	}
	return info.Size() == 0, nil
}
