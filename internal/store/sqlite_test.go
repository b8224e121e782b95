package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/research"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testSnapshot(category model.CategoryID, brand string, assessment model.Assessment) *research.Snapshot {
	return &research.Snapshot{
		ID:              uuid.New().String(),
		Category:        category,
		Brand:           brand,
		PriceMultiplier: 2.5,
		Authenticity: model.AuthenticityCheckResult{
			Assessment: assessment,
			Confidence: 0.8,
		},
		Facts:     research.Facts{Year: 2024},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestSQLite_SaveAndGetSnapshot(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	snap := testSnapshot(model.CategoryLuxuryHandbags, "Louis Vuitton", model.AssessmentLikelyAuthentic)
	require.NoError(t, st.SaveSnapshot(ctx, snap))

	fetched, err := st.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, fetched.ID)
	assert.Equal(t, snap.Category, fetched.Category)
	assert.Equal(t, "Louis Vuitton", fetched.Brand)
	assert.Equal(t, 2.5, fetched.PriceMultiplier)
	assert.Equal(t, model.AssessmentLikelyAuthentic, fetched.Authenticity.Assessment)
	assert.Equal(t, 2024, fetched.Facts.Year)
}

func TestSQLite_GetSnapshot_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetSnapshot(context.Background(), "nonexistent-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_SaveSnapshot_Upsert(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	snap := testSnapshot(model.CategoryLuxuryHandbags, "Chanel", model.AssessmentUncertain)
	require.NoError(t, st.SaveSnapshot(ctx, snap))

	snap.PriceMultiplier = 4.0
	snap.Authenticity.Assessment = model.AssessmentLikelyAuthentic
	require.NoError(t, st.SaveSnapshot(ctx, snap))

	fetched, err := st.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, fetched.PriceMultiplier)
	assert.Equal(t, model.AssessmentLikelyAuthentic, fetched.Authenticity.Assessment)

	snapshots, err := st.ListSnapshots(ctx, SnapshotFilter{})
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestSQLite_SaveSnapshots_CountsSaved(t *testing.T) {
	st := newTestSQLiteStore(t)

	batch := []*research.Snapshot{
		testSnapshot(model.CategoryLuxuryHandbags, "Hermès", model.AssessmentLikelyAuthentic),
		testSnapshot(model.CategoryLuxuryWatches, "Rolex", model.AssessmentUncertain),
	}
	saved, err := st.SaveSnapshots(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)
}

func TestSQLite_ListSnapshots_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveSnapshot(ctx, testSnapshot(model.CategoryLuxuryHandbags, "Hermès", model.AssessmentLikelyAuthentic)))
	require.NoError(t, st.SaveSnapshot(ctx, testSnapshot(model.CategoryLuxuryHandbags, "Chanel", model.AssessmentUncertain)))
	require.NoError(t, st.SaveSnapshot(ctx, testSnapshot(model.CategoryLuxuryWatches, "Rolex", model.AssessmentLikelyAuthentic)))

	byCategory, err := st.ListSnapshots(ctx, SnapshotFilter{Category: model.CategoryLuxuryHandbags})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byBrand, err := st.ListSnapshots(ctx, SnapshotFilter{Brand: "Rolex"})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, model.CategoryLuxuryWatches, byBrand[0].Category)

	byAssessment, err := st.ListSnapshots(ctx, SnapshotFilter{Assessment: model.AssessmentUncertain})
	require.NoError(t, err)
	require.Len(t, byAssessment, 1)
	assert.Equal(t, "Chanel", byAssessment[0].Brand)
}

func TestSQLite_ListSnapshots_LimitAndOffset(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, st.SaveSnapshot(ctx, testSnapshot(model.CategorySneakers, "Nike", model.AssessmentUncertain)))
	}

	page, err := st.ListSnapshots(ctx, SnapshotFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := st.ListSnapshots(ctx, SnapshotFilter{Limit: 10, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestSQLite_ListSnapshots_Empty(t *testing.T) {
	st := newTestSQLiteStore(t)

	snapshots, err := st.ListSnapshots(context.Background(), SnapshotFilter{})
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestSQLite_Migrate_Idempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
}
