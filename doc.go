// Package lineage is the access layer between a pipeline orchestrator and
// the metadata store that persists artifact records.
//
// It provides two stateless operations over a caller-owned store handle:
//
//   - GetArtifactsByIDs: batch fetch of artifacts by ID, joining records
//     with their type definitions and deserializing each into its typed
//     domain object
//   - UpdateArtifacts: batch update of already-persisted artifacts, with
//     an optional uniform lifecycle-state overwrite
//
// The package is organized into subpackages by concern:
//
//   - store: the store client boundary (records, type definitions, Store)
//   - store/memstore: in-memory store for tests and local runs
//   - store/sqlstore: SQLite-backed store
//   - telemetry: injectable latency observer hook
//   - config: YAML + environment configuration
//   - testutil: spy and seeded stores for tests
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/lineage"
//	    "github.com/randalmurphal/lineage/store/memstore"
//	)
//
//	st := memstore.New()
//	// ... seed types and records ...
//
//	artifacts, err := lineage.GetArtifactsByIDs(ctx, st, []int64{1, 2})
//	if err != nil {
//	    return err
//	}
//
//	m := lineage.ArtifactMultiMap{"examples": artifacts}
//	err = lineage.UpdateArtifacts(ctx, st, m, lineage.StatePublished)
//
// See individual package documentation for detailed usage.
package lineage
