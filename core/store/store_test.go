package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaire/planforge/core/blueprint"
	"github.com/veltaire/planforge/core/pattern"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testBlueprint(id string) *blueprint.AgenticBlueprint {
	return &blueprint.AgenticBlueprint{
		BusinessObjective: "Cut claims processing cycle time in half",
		Pattern:           pattern.ManagerWorkers,
		QualityScore:      85,
		Provenance: blueprint.Provenance{
			BlueprintID:   id,
			Provider:      "anthropic",
			Model:         "claude-sonnet-4-5-20250901",
			PromptVersion: "v3",
			Attempts:      2,
			GeneratedAt:   time.Now().UTC().Truncate(time.Second),
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	bp := testBlueprint("bp-1")
	require.NoError(t, s.Save(ctx, "Meridian Health Partners", bp))

	rec, err := s.Get(ctx, "bp-1")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Meridian Health Partners", rec.Company)
	assert.Equal(t, "manager-workers", rec.Pattern)
	assert.Equal(t, 85, rec.QualityScore)
	assert.Equal(t, 2, rec.Attempts)
	require.NotNil(t, rec.Blueprint)
	assert.Equal(t, bp.BusinessObjective, rec.Blueprint.BusinessObjective)
	assert.Equal(t, bp.Provenance.Model, rec.Blueprint.Provenance.Model)
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := testStore(t)

	rec, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveUpserts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	bp := testBlueprint("bp-1")
	require.NoError(t, s.Save(ctx, "Old Name", bp))

	bp.QualityScore = 95
	require.NoError(t, s.Save(ctx, "New Name", bp))

	rec, err := s.Get(ctx, "bp-1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", rec.Company)
	assert.Equal(t, 95, rec.QualityScore)

	records, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i, id := range []string{"bp-a", "bp-b", "bp-c"} {
		bp := testBlueprint(id)
		bp.Provenance.GeneratedAt = time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.Save(ctx, "Test Co", bp))
	}

	records, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "bp-c", records[0].ID)
	assert.Equal(t, "bp-a", records[2].ID)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
