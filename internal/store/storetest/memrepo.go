// Package storetest provides an in-memory RecordRepo for tests.
package storetest

import (
	"context"
	"sync"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/store"
)

// MemRepo keeps records in memory. Set LoadErr or AppendErr to make the
// matching call fail.
type MemRepo struct {
	mu        sync.Mutex
	records   []footprint.Record
	LoadErr   error
	AppendErr error
	Appends   int
	Loads     int
}

var _ store.RecordRepo = (*MemRepo)(nil)

// New returns a MemRepo holding records.
func New(records ...footprint.Record) *MemRepo {
	return &MemRepo{records: records}
}

func (r *MemRepo) Append(_ context.Context, rec footprint.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Appends++
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *MemRepo) Load(context.Context) ([]footprint.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Loads++
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return append([]footprint.Record(nil), r.records...), nil
}

// Records returns a copy of the stored records.
func (r *MemRepo) Records() []footprint.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]footprint.Record(nil), r.records...)
}
