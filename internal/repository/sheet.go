package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/keysheet/keysheet-go/internal/model"
)

var ErrMalformedSheet = errors.New("record sheet is unreadable or has an unexpected shape")

const (
	sheetName = "Passwords"

	// Headers in stored column order. Existing files must keep reading
	// back with exactly these names in this order.
	headerPurpose   = "Purpose"
	headerPassword  = "Password"
	headerTimestamp = "Timestamp"
)

// SheetStore persists password records as a single-sheet xlsx table with
// three columns: Purpose, Password, Timestamp. The file is created on first
// append; after that every append reads all existing rows, adds the new one
// and rewrites the whole table through a temp file renamed over the original,
// so a crash mid-write never corrupts prior data.
//
// The mutex serializes appends within this process only. Concurrent appends
// from separate processes, or appends while the file is held open by a
// spreadsheet application, still race and may lose updates.
type SheetStore struct {
	mu   sync.Mutex
	path string
}

// NewSheetStore creates a store backed by the xlsx file at path. The file
// need not exist yet.
func NewSheetStore(path string) *SheetStore {
	return &SheetStore{path: path}
}

// Path returns the location of the backing xlsx file.
func (s *SheetStore) Path() string {
	return s.path
}

// Append adds record as the last row of the table, creating the file with a
// header row on first use. The record's purpose is upper-cased before storage
// and rec is updated in place to reflect what was written. An existing file
// that is not a well-formed record sheet is never overwritten; the append
// fails with ErrMalformedSheet instead.
func (s *SheetStore) Append(rec *model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	rec.Purpose = strings.ToUpper(rec.Purpose)
	records = append(records, *rec)

	return s.rewrite(records)
}

// ReadAll returns every record in append order. A missing file yields an
// empty result and no error; a malformed file yields ErrMalformedSheet.
func (s *SheetStore) ReadAll() ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *SheetStore) readAll() ([]model.Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking record sheet: %w", err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSheet, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %q sheet", ErrMalformedSheet, sheetName)
	}
	if len(rows) == 0 || cell(rows[0], 0) != headerPurpose ||
		cell(rows[0], 1) != headerPassword || cell(rows[0], 2) != headerTimestamp {
		return nil, fmt.Errorf("%w: unexpected header row", ErrMalformedSheet)
	}

	var records []model.Record
	for _, row := range rows[1:] {
		records = append(records, model.Record{
			Purpose:   cell(row, 0),
			Password:  cell(row, 1),
			Timestamp: cell(row, 2),
		})
	}

	return records, nil
}

// rewrite writes the full table to a temp file in the same directory and
// renames it over the original.
func (s *SheetStore) rewrite(records []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("building record sheet: %w", err)
	}

	// Column width hints carried over from the original layout.
	if err := f.SetColWidth(sheetName, "A", "A", 25); err != nil {
		return fmt.Errorf("building record sheet: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 35); err != nil {
		return fmt.Errorf("building record sheet: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "C", 25); err != nil {
		return fmt.Errorf("building record sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]any{headerPurpose, headerPassword, headerTimestamp}); err != nil {
		return fmt.Errorf("building record sheet: %w", err)
	}
	for i, rec := range records {
		anchor := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, anchor, &[]any{rec.Purpose, rec.Password, rec.Timestamp}); err != nil {
			return fmt.Errorf("building record sheet: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".passwords-*.xlsx")
	if err != nil {
		return fmt.Errorf("creating temp sheet: %w", err)
	}
	tmpPath := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing record sheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing record sheet: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing record sheet: %w", err)
	}

	return nil
}

// cell returns the i-th cell of a row, tolerating rows that xlsx readers
// return short when trailing cells are empty.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
