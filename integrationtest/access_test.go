package integrationtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/lineage"
	"github.com/randalmurphal/lineage/store"
	"github.com/randalmurphal/lineage/telemetry"
)

// TestFetchUpdateRoundTrip drives the full read-modify-write cycle
// against a real SQLite store.
func TestFetchUpdateRoundTrip(t *testing.T) {
	st, typeIDs := setupStore(t)
	ctx := context.Background()

	ids := seedArtifacts(t, st,
		&store.Record{
			TypeID: typeIDs[lineage.TypeExamples],
			URI:    "/data/examples/span-7",
			State:  string(lineage.StatePending),
			Properties: map[string]store.Value{
				"span":    store.IntValue(7),
				"version": store.IntValue(1),
			},
		},
		&store.Record{
			TypeID: typeIDs[lineage.TypeModel],
			URI:    "/models/run-42",
			State:  string(lineage.StatePending),
		},
	)

	// Fetch joins records with their types and yields typed variants.
	artifacts, err := lineage.GetArtifactsByIDs(ctx, st, ids)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	byType := map[string]lineage.Artifact{}
	for _, a := range artifacts {
		byType[a.TypeName()] = a
	}
	ex, ok := byType[lineage.TypeExamples].(*lineage.Examples)
	require.True(t, ok, "Examples record should deserialize to *lineage.Examples")
	require.Equal(t, int64(7), ex.Span())
	require.IsType(t, &lineage.Model{}, byType[lineage.TypeModel])

	// Publish the whole batch.
	m := lineage.ArtifactMultiMap{"outputs": artifacts}
	require.NoError(t, lineage.UpdateArtifacts(ctx, st, m, lineage.StatePublished))

	refetched, err := lineage.GetArtifactsByIDs(ctx, st, ids)
	require.NoError(t, err)
	for _, a := range refetched {
		require.Equal(t, lineage.StatePublished, a.State(), "artifact %d", a.ID())
	}
}

func TestFetchMissingIDFailsWhole(t *testing.T) {
	st, typeIDs := setupStore(t)
	ctx := context.Background()

	ids := seedArtifacts(t, st, &store.Record{TypeID: typeIDs[lineage.TypeModel]})
	requested := append(ids, 98765)

	artifacts, err := lineage.GetArtifactsByIDs(ctx, st, requested)
	require.ErrorIs(t, err, lineage.ErrNotFound)
	require.Nil(t, artifacts, "no partial result on a missing id")

	var nfe *lineage.NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, requested, nfe.IDs)
}

func TestUpdateRejectsUnsavedWithoutWriting(t *testing.T) {
	st, typeIDs := setupStore(t)
	ctx := context.Background()

	ids := seedArtifacts(t, st, &store.Record{
		TypeID: typeIDs[lineage.TypeModel],
		State:  string(lineage.StatePending),
	})
	fetched, err := lineage.GetArtifactsByIDs(ctx, st, ids)
	require.NoError(t, err)

	unsaved := lineage.DefaultRegistry().Deserialize(
		store.ArtifactType{ID: typeIDs[lineage.TypeModelBlessing], Name: lineage.TypeModelBlessing},
		&store.Record{TypeID: typeIDs[lineage.TypeModelBlessing]},
	)

	m := lineage.ArtifactMultiMap{
		"model":    fetched,
		"blessing": {unsaved},
	}
	err = lineage.UpdateArtifacts(ctx, st, m, lineage.StatePublished)
	require.ErrorIs(t, err, lineage.ErrInvalidArgument)

	// The persisted artifact kept its pre-call state: nothing was written.
	refetched, err := lineage.GetArtifactsByIDs(ctx, st, ids)
	require.NoError(t, err)
	require.Equal(t, lineage.StatePending, refetched[0].State())
}

func TestTelemetryObserverSeesStoreCalls(t *testing.T) {
	st, typeIDs := setupStore(t)

	var methods []string
	ctx := telemetry.WithObserver(context.Background(),
		telemetry.ObserverFunc(func(_ context.Context, e telemetry.Event) {
			methods = append(methods, e.Method)
		}))

	ids := seedArtifacts(t, st, &store.Record{TypeID: typeIDs[lineage.TypeExamples]})
	artifacts, err := lineage.GetArtifactsByIDs(ctx, st, ids)
	require.NoError(t, err)
	require.NoError(t, lineage.UpdateArtifacts(ctx, st,
		lineage.ArtifactMultiMap{"out": artifacts}, lineage.StateUnknown))

	require.Equal(t, []string{"GetArtifactsByIDs", "UpdateArtifacts"}, methods)
}
