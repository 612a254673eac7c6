package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/footprint/internal/footprint"
)

// JSONStore keeps every record in one pretty-printed JSON array.
//
// Appends read the whole file, add one record and rewrite the file. There
// is no locking: two processes appending to the same path can lose updates.
type JSONStore struct {
	path   string
	logger *zap.Logger
}

var _ RecordRepo = (*JSONStore)(nil)

// Open returns a store for the file at path. The file does not need to
// exist yet; it is created by the first Append.
func Open(path string, logger *zap.Logger) (*JSONStore, error) {
	if path == "" {
		return nil, errors.New("open store: empty path")
	}
	if _, err := recordsSchema(); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStore{
		path:   path,
		logger: logger.With(zap.String("file", path)),
	}, nil
}

// Path returns the file backing the store.
func (s *JSONStore) Path() string {
	return s.path
}

// Load returns every record in insertion order.
//
// A missing file yields ErrNotFound. An empty, malformed or non-conforming
// file yields a *CorruptError. Any other failure is returned wrapped.
func (s *JSONStore) Load(ctx context.Context) ([]footprint.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	s.logger.Debug("loaded records", zap.Int("count", len(records)))
	return records, nil
}

// Append adds rec after the existing records and rewrites the file.
//
// A missing or corrupt file is treated as an empty store, which replaces
// unreadable content with a fresh one-record array. Other read failures are
// returned without touching the file.
func (s *JSONStore) Append(ctx context.Context, rec footprint.Record) error {
	records, err := s.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		s.logger.Debug("creating record file")
	case errors.Is(err, ErrCorrupt):
		s.logger.Warn("discarding unreadable record file", zap.Error(err))
		records = nil
	default:
		return fmt.Errorf("append record: %w", err)
	}

	records = append(records, rec)
	if err := s.write(records); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	s.logger.Debug("appended record",
		zap.Int("count", len(records)),
		zap.Float64("total_contamination", rec.Total))
	return nil
}

// Reset deletes the record file. A missing file is not an error.
func (s *JSONStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reset %s: %w", s.path, err)
	}
	s.logger.Info("record file removed")
	return nil
}

// write replaces the file with records via a temp file and rename so
// readers never observe a partial array.
func (s *JSONStore) write(records []footprint.Record) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	if err := EnsureDir(s.path); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// encodeRecords renders records with four-space indentation, matching files
// written by earlier versions of the questionnaire.
func encodeRecords(records []footprint.Record) ([]byte, error) {
	if records == nil {
		records = []footprint.Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeRecords parses and validates a record file.
func decodeRecords(data []byte) ([]footprint.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateRecords(doc); err != nil {
		return nil, err
	}

	var records []footprint.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
