package lineage

import (
	"context"
	"fmt"
	"time"

	"github.com/randalmurphal/lineage/store"
	"github.com/randalmurphal/lineage/telemetry"
)

// GetArtifactsByIDs fetches artifacts from the store by ID and
// deserializes each into its typed domain object using DefaultRegistry.
//
// Every requested ID must resolve: if the store returns fewer records
// than IDs requested, the call fails with *NotFoundError and nothing is
// returned. Result order follows the store's return order, which is not
// necessarily the input order; callers get the same multiset of IDs back,
// nothing more.
func GetArtifactsByIDs(ctx context.Context, s store.Store, ids []int64) ([]Artifact, error) {
	return GetArtifactsByIDsWithRegistry(ctx, s, ids, DefaultRegistry())
}

// GetArtifactsByIDsWithRegistry is GetArtifactsByIDs with a custom
// variant registry.
func GetArtifactsByIDsWithRegistry(ctx context.Context, s store.Store, ids []int64, reg *Registry) ([]Artifact, error) {
	start := time.Now()

	recs, types, err := s.GetArtifactsAndTypesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(recs) != len(ids) {
		return nil, &NotFoundError{IDs: ids}
	}

	// One lookup per batch, keyed by type ID.
	typesByID := make(map[int64]store.ArtifactType, len(types))
	for _, t := range types {
		typesByID[t.ID] = t
	}

	artifacts := make([]Artifact, 0, len(recs))
	for _, rec := range recs {
		typ, ok := typesByID[rec.TypeID]
		if !ok {
			// The store guarantees the returned type set covers every
			// returned record. A miss here is store corruption, not a
			// caller error.
			panic(fmt.Sprintf("lineage: store returned record %d with unresolved type id %d", rec.ID, rec.TypeID))
		}
		artifacts = append(artifacts, reg.Deserialize(typ, rec))
	}

	emit(ctx, "GetArtifactsByIDs", start)
	return artifacts, nil
}

// UpdateArtifacts persists already-fetched artifacts back to the store.
//
// Every artifact in the multi-map must carry a persisted ID; the first
// one without fails the call with *InvalidArgumentError before the store
// is touched. When newState is not StateUnknown it is set on every
// artifact in the batch before persisting, mutating the caller-owned
// artifacts in place. An empty multi-map is a no-op.
func UpdateArtifacts(ctx context.Context, s store.Store, m ArtifactMultiMap, newState State) error {
	start := time.Now()

	artifacts := m.Flatten()
	recs := make([]*store.Record, 0, len(artifacts))
	for _, a := range artifacts {
		if !a.HasID() {
			return &InvalidArgumentError{
				Op:       "UpdateArtifacts",
				TypeName: a.TypeName(),
				Reason:   "artifact must have a persisted ID in order to be updated",
			}
		}
		if newState != StateUnknown {
			a.SetState(newState)
		}
		recs = append(recs, a.Record())
	}

	if len(recs) > 0 {
		if err := s.PutArtifacts(ctx, recs); err != nil {
			return err
		}
	}

	emit(ctx, "UpdateArtifacts", start)
	return nil
}

// emit reports call latency to the observer in ctx. Pure side channel:
// it runs after the operation's outcome is decided and cannot alter it.
func emit(ctx context.Context, method string, start time.Time) {
	telemetry.Emit(ctx, telemetry.Event{
		Module:   "lineage",
		Method:   method,
		Start:    start,
		Duration: time.Since(start),
	})
}
