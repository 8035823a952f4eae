// Package storage persists per-user activity records as flat CSV files.
//
// Each user owns exactly one file at <dir>/<userID>_data.csv. The first
// line is the fixed column header; every following line is one record.
// There is no locking and no atomic replace: the design assumes a single
// process and a single writer.
package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"hourtrack/internal/core"
	logf "hourtrack/internal/log"
)

// Header is the fixed first line of every record file.
var Header = []string{"Date", "Category", "Activity", "TimeSpent"}

// CSVStore implements RecordStore over one directory of per-user files.
type CSVStore struct {
	dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{dir: dir}
}

// Path returns the record file location for a user.
func (s *CSVStore) Path(userID string) string {
	return filepath.Join(s.dir, userID+"_data.csv")
}

func (s *CSVStore) Initialize(ctx context.Context, userID string) error {
	if err := core.ValidateUserID(userID); err != nil {
		return err
	}
	path := s.Path(userID)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat record file: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create record file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}

	slog.InfoContext(ctx, "Record store initialized", logf.FieldUserID, userID, logf.FieldPath, path)
	return nil
}

func (s *CSVStore) ReadAll(ctx context.Context, userID string) ([]core.Record, error) {
	return s.read(userID)
}

func (s *CSVStore) ReadToday(ctx context.Context, userID string) ([]core.Record, error) {
	all, err := s.read(userID)
	if err != nil {
		// First run behaves as "no activity yet", without warning noise.
		if err == ErrMissingStore {
			return nil, nil
		}
		return nil, err
	}
	today := core.Today()
	var out []core.Record
	for _, r := range all {
		if r.Date == today {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *CSVStore) Append(ctx context.Context, userID string, rec core.Record) error {
	if rec.Category == "" {
		rec.Category = core.DefaultCategory
	}
	f, err := os.OpenFile(s.Path(userID), os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("open record file for append: %w", ErrMissingStore)
		}
		return fmt.Errorf("open record file for append: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(encodeRecord(rec)); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}
	return nil
}

// WriteAll rewrites the whole file in place. A crash mid-write can leave a
// truncated file; single-writer use is assumed.
func (s *CSVStore) WriteAll(ctx context.Context, userID string, records []core.Record) error {
	f, err := os.Create(s.Path(userID))
	if err != nil {
		return fmt.Errorf("rewrite record file: %w", err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("rewrite record file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}
	return nil
}

func (s *CSVStore) Clear(ctx context.Context, userID string) error {
	return s.WriteAll(ctx, userID, nil)
}

// WriteRecords encodes the header plus one line per record. Shared by the
// store rewrite path and by history export.
func WriteRecords(dst io.Writer, records []core.Record) error {
	w := csv.NewWriter(dst)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(encodeRecord(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) read(userID string) ([]core.Record, error) {
	f, err := os.Open(s.Path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingStore
		}
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate rows written under an older header

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := columnIndex(header)

	var records []core.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record row: %w", err)
		}
		records = append(records, decodeRecord(row, cols))
	}
	return records, nil
}

func encodeRecord(r core.Record) []string {
	return []string{r.Date.String(), r.Category, r.Activity, strconv.Itoa(r.TimeSpent)}
}

// decodeRecord maps a row through the file's own header. A row without a
// category field is defaulted rather than rejected, so files written before
// the category column existed still load.
func decodeRecord(row []string, cols map[string]int) core.Record {
	rec := core.Record{
		Date:     core.Date(field(row, cols, "Date")),
		Category: field(row, cols, "Category"),
		Activity: field(row, cols, "Activity"),
	}
	if rec.Category == "" {
		rec.Category = core.DefaultCategory
	}
	if mins, err := strconv.Atoi(field(row, cols, "TimeSpent")); err == nil {
		rec.TimeSpent = mins
	}
	return rec
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
