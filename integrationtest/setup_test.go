package integrationtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/lineage"
	"github.com/randalmurphal/lineage/store"
	"github.com/randalmurphal/lineage/store/sqlstore"
)

// setupStore opens a SQLite store in a temp directory with the standard
// artifact types registered. Returns the store and the type IDs keyed by
// type name.
func setupStore(t *testing.T) (*sqlstore.Store, map[string]int64) {
	t.Helper()

	st, err := sqlstore.Open(filepath.Join(t.TempDir(), "metadata.db"))
	require.NoError(t, err, "open sqlite store")
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	typeIDs := make(map[string]int64)
	for _, name := range []string{
		lineage.TypeExamples,
		lineage.TypeModel,
		lineage.TypeModelBlessing,
	} {
		id, err := st.PutArtifactType(ctx, store.ArtifactType{Name: name})
		require.NoError(t, err, "register type %s", name)
		typeIDs[name] = id
	}
	return st, typeIDs
}

// seedArtifacts persists the given records and returns their IDs.
func seedArtifacts(t *testing.T, st *sqlstore.Store, recs ...*store.Record) []int64 {
	t.Helper()
	require.NoError(t, st.PutArtifacts(context.Background(), recs), "seed artifacts")
	ids := make([]int64, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	return ids
}
