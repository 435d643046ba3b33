// Package memstore provides an in-memory metadata store. It backs tests,
// examples, and local single-process runs; nothing survives the process.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/lineage/store"
)

// Store is an in-memory store.Store implementation. Safe for concurrent
// use; reads return deep copies so callers never alias store memory.
type Store struct {
	mu             sync.RWMutex
	nextArtifactID int64
	nextTypeID     int64
	artifacts      map[int64]*store.Record
	types          map[int64]store.ArtifactType
	typeIDsByName  map[string]int64
}

var _ store.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		artifacts:     make(map[int64]*store.Record),
		types:         make(map[int64]store.ArtifactType),
		typeIDsByName: make(map[string]int64),
	}
}

// PutArtifactType registers a type definition and returns its ID.
// Registering an already-known name returns the existing ID unchanged.
func (s *Store) PutArtifactType(t store.ArtifactType) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.typeIDsByName[t.Name]; ok {
		return id
	}
	s.nextTypeID++
	t.ID = s.nextTypeID
	s.types[t.ID] = t
	s.typeIDsByName[t.Name] = t.ID
	return t.ID
}

// GetArtifactsAndTypesByIDs implements store.Store. Missing IDs are
// silently absent from the result; duplicates in ids resolve to a single
// record.
func (s *Store) GetArtifactsAndTypesByIDs(ctx context.Context, ids []int64) ([]*store.Record, []store.ArtifactType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	var recs []*store.Record
	typeSeen := make(map[int64]bool)
	var types []store.ArtifactType

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		rec, ok := s.artifacts[id]
		if !ok {
			continue
		}
		recs = append(recs, rec.Clone())
		if !typeSeen[rec.TypeID] {
			typeSeen[rec.TypeID] = true
			types = append(types, s.types[rec.TypeID])
		}
	}
	return recs, types, nil
}

// PutArtifacts implements store.Store. The whole batch is validated
// before any record is applied, so a failed put changes nothing.
func (s *Store) PutArtifacts(ctx context.Context, recs []*store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range recs {
		if _, ok := s.types[rec.TypeID]; !ok {
			return fmt.Errorf("memstore: put artifact: unknown type id %d", rec.TypeID)
		}
		if rec.ID != 0 {
			if _, ok := s.artifacts[rec.ID]; !ok {
				return fmt.Errorf("memstore: put artifact: no artifact with id %d", rec.ID)
			}
		}
	}

	now := time.Now()
	for _, rec := range recs {
		if rec.ID == 0 {
			s.nextArtifactID++
			rec.ID = s.nextArtifactID
			rec.CreateTime = now
			if rec.ExternalID == "" {
				rec.ExternalID = mustNanoID()
			}
		}
		rec.LastUpdateTime = now
		s.artifacts[rec.ID] = rec.Clone()
	}
	return nil
}

// Len returns the number of stored artifacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.artifacts)
}

func mustNanoID() string {
	id, err := nanoid.New()
	if err != nil {
		// nanoid fails only if the OS entropy source does.
		panic("memstore: generate external id: " + err.Error())
	}
	return id
}
