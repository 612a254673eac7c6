package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/footprint/internal/footprint"
)

// RecordRepo is the questionnaire history.
type RecordRepo interface {
	// Append adds a record after all existing ones.
	Append(ctx context.Context, rec footprint.Record) error

	// Load returns all records in the order they were appended.
	Load(ctx context.Context) ([]footprint.Record, error)
}

var (
	// ErrNotFound means the record file does not exist yet.
	ErrNotFound = errors.New("record file not found")

	// ErrCorrupt means the record file exists but cannot be used.
	ErrCorrupt = errors.New("record file corrupt")
)

// CorruptError reports why a record file was rejected. It matches
// ErrCorrupt with errors.Is.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt record file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }
