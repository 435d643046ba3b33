// Package testutil provides store doubles for testing: a spy that records
// calls and seed helpers over the in-memory store.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/randalmurphal/lineage/store"
	"github.com/randalmurphal/lineage/store/memstore"
)

// SpyStore wraps a store.Store and records every call. With a nil Inner
// it behaves as an empty store, which is enough for tests asserting that
// a call never reaches the store.
type SpyStore struct {
	Inner store.Store

	// GetErr and PutErr, when set, are returned instead of delegating.
	GetErr error
	PutErr error

	mu       sync.Mutex
	getCalls [][]int64
	putCalls [][]*store.Record
}

var _ store.Store = (*SpyStore)(nil)

// GetArtifactsAndTypesByIDs implements store.Store.
func (s *SpyStore) GetArtifactsAndTypesByIDs(ctx context.Context, ids []int64) ([]*store.Record, []store.ArtifactType, error) {
	s.mu.Lock()
	s.getCalls = append(s.getCalls, append([]int64(nil), ids...))
	s.mu.Unlock()

	if s.GetErr != nil {
		return nil, nil, s.GetErr
	}
	if s.Inner == nil {
		return nil, nil, nil
	}
	return s.Inner.GetArtifactsAndTypesByIDs(ctx, ids)
}

// PutArtifacts implements store.Store.
func (s *SpyStore) PutArtifacts(ctx context.Context, recs []*store.Record) error {
	s.mu.Lock()
	s.putCalls = append(s.putCalls, append([]*store.Record(nil), recs...))
	s.mu.Unlock()

	if s.PutErr != nil {
		return s.PutErr
	}
	if s.Inner == nil {
		return nil
	}
	return s.Inner.PutArtifacts(ctx, recs)
}

// GetCalls returns the recorded fetch calls.
func (s *SpyStore) GetCalls() [][]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]int64(nil), s.getCalls...)
}

// PutCalls returns the recorded put calls.
func (s *SpyStore) PutCalls() [][]*store.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]*store.Record(nil), s.putCalls...)
}

// PutCount returns the number of put calls issued.
func (s *SpyStore) PutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.putCalls)
}

// MustPutType registers a type on the in-memory store and returns its ID.
func MustPutType(tb testing.TB, st *memstore.Store, typeName string) int64 {
	tb.Helper()
	return st.PutArtifactType(store.ArtifactType{Name: typeName})
}

// MustPutArtifact persists a record on the in-memory store and returns
// its assigned ID.
func MustPutArtifact(tb testing.TB, st *memstore.Store, rec *store.Record) int64 {
	tb.Helper()
	if err := st.PutArtifacts(context.Background(), []*store.Record{rec}); err != nil {
		tb.Fatalf("seed artifact: %v", err)
	}
	return rec.ID
}
