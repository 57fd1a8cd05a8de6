// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/adapter"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/mock"
	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	recentDrawing = models.Drawing{
		ID:        "11111111-1111-4111-8111-111111111111",
		Title:     "Roadmap Q2",
		UpdatedAt: baseTime.Add(2 * time.Hour),
	}
	pinnedDrawing = models.Drawing{
		ID:        "22222222-2222-4222-8222-222222222222",
		Title:     "Architecture sketch",
		IsPinned:  true,
		UpdatedAt: baseTime.Add(time.Hour),
	}
	archivedDrawing = models.Drawing{
		ID:         "33333333-3333-4333-8333-333333333333",
		Title:      "Old wireframe",
		IsArchived: true,
		UpdatedAt:  baseTime,
	}
	trashedDrawing = models.Drawing{
		ID:        "44444444-4444-4444-8444-444444444444",
		Title:     "Scrapped idea",
		IsDeleted: true,
		UpdatedAt: baseTime.Add(30 * time.Minute),
	}
)

func newTestMirror(t *testing.T, ctrl *gomock.Controller) (*mirrorStore, *mock.MockServerAdapter, *mock.MockLocalDrawingRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockLocal := mock.NewMockLocalDrawingRepository(ctrl)
	log := logger.NewClientLogger("test")

	m := NewMirrorStore(mockAdapter, mockLocal, log).(*mirrorStore)
	return m, mockAdapter, mockLocal
}

// seedMirror fills the in-memory mirror through Load.
func seedMirror(t *testing.T, m *mirrorStore, local *mock.MockLocalDrawingRepository, drawings ...models.Drawing) {
	t.Helper()
	local.EXPECT().GetAllDrawings(gomock.Any()).Return(drawings, nil)
	require.NoError(t, m.Load(context.Background()))
}

// ── Load / Refresh ──────────────────────────────────────────────────────────

func TestMirror_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockLocal := newTestMirror(t, ctrl)
	seedMirror(t, m, mockLocal, recentDrawing, trashedDrawing)

	got, ok := m.GetDrawing(recentDrawing.ID)
	require.True(t, ok)
	assert.Equal(t, "Roadmap Q2", got.Title)

	_, ok = m.GetDrawing("unknown")
	assert.False(t, ok)
}

func TestMirror_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryRecent, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{Drawings: []models.Drawing{recentDrawing, pinnedDrawing}, Total: 2}, nil)
	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryArchived, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{Drawings: []models.Drawing{archivedDrawing}, Total: 1}, nil)
	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryTrash, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{Drawings: []models.Drawing{trashedDrawing}, Total: 1}, nil)
	mockLocal.EXPECT().
		ReplaceAll(ctx, gomock.Len(4)).
		Return(nil)

	require.NoError(t, m.Refresh(ctx))

	assert.Len(t, m.Drawings(models.CategoryRecent, ""), 2)
	assert.Len(t, m.Drawings(models.CategoryArchived, ""), 1)
	assert.Len(t, m.Drawings(models.CategoryTrash, ""), 1)
}

func TestMirror_Refresh_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()

	firstPage := make([]models.Drawing, 100)
	for i := range firstPage {
		firstPage[i] = models.Drawing{ID: string(rune('a'+i%26)) + string(rune('0'+i/26))}
	}

	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryRecent, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{Drawings: firstPage, Total: 101}, nil)
	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryRecent, Page: 2, PageSize: 100}).
		Return(models.ListDrawingsResponse{Drawings: []models.Drawing{recentDrawing}, Total: 101}, nil)
	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryArchived, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{}, nil)
	mockAdapter.EXPECT().
		ListDrawings(ctx, models.ListQuery{Category: models.CategoryTrash, Page: 1, PageSize: 100}).
		Return(models.ListDrawingsResponse{}, nil)
	mockLocal.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(nil)

	require.NoError(t, m.Refresh(ctx))
}

func TestMirror_Refresh_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestMirror(t, ctrl)

	mockAdapter.EXPECT().
		ListDrawings(gomock.Any(), gomock.Any()).
		Return(models.ListDrawingsResponse{}, adapter.ErrUnauthorized)

	err := m.Refresh(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── Drawings (filter / search / order) ──────────────────────────────────────

func TestMirror_Drawings_FilterAndOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockLocal := newTestMirror(t, ctrl)
	seedMirror(t, m, mockLocal, recentDrawing, pinnedDrawing, archivedDrawing, trashedDrawing)

	recent := m.Drawings(models.CategoryRecent, "")
	require.Len(t, recent, 2)
	assert.Equal(t, recentDrawing.ID, recent[0].ID, "newest update first")
	assert.Equal(t, pinnedDrawing.ID, recent[1].ID)

	assert.Len(t, m.Drawings(models.CategoryPinned, ""), 1)
	assert.Len(t, m.Drawings(models.CategoryTrash, ""), 1)
	assert.Empty(t, m.Drawings(models.CategoryPublic, ""))
}

func TestMirror_Drawings_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockLocal := newTestMirror(t, ctrl)
	seedMirror(t, m, mockLocal, recentDrawing, pinnedDrawing)

	matched := m.Drawings(models.CategoryRecent, "  ROADMAP ")
	require.Len(t, matched, 1)
	assert.Equal(t, recentDrawing.ID, matched[0].ID)

	assert.Empty(t, m.Drawings(models.CategoryRecent, "nonexistent"))
}

// ── CreateDrawing ───────────────────────────────────────────────────────────

func TestMirror_CreateDrawing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()

	var requestedID string
	mockAdapter.EXPECT().
		CreateDrawing(ctx, gomock.Any(), models.CreateDrawingRequest{Title: "Sprint board"}).
		DoAndReturn(func(_ context.Context, drawingID string, req models.CreateDrawingRequest) (models.Drawing, error) {
			requestedID = drawingID
			return models.Drawing{ID: drawingID, Title: req.Title, UpdatedAt: baseTime}, nil
		})
	mockLocal.EXPECT().UpsertDrawings(ctx, gomock.Any()).Return(nil)

	created, err := m.CreateDrawing(ctx, models.CreateDrawingRequest{Title: "Sprint board"})
	require.NoError(t, err)
	assert.Equal(t, requestedID, created.ID)

	mirrored, ok := m.GetDrawing(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Sprint board", mirrored.Title)
}

func TestMirror_CreateDrawing_RevertsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestMirror(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateDrawing(ctx, gomock.Any(), gomock.Any()).
		Return(models.Drawing{}, adapter.ErrConflict)

	_, err := m.CreateDrawing(ctx, models.CreateDrawingRequest{Title: "Doomed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConflict)

	assert.Empty(t, m.Drawings(models.CategoryRecent, ""), "placeholder must be reverted")
}

// ── Toggles / UpdateMetadata ────────────────────────────────────────────────

func TestMirror_TogglePinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing)

	mockAdapter.EXPECT().
		UpdateMetadata(ctx, recentDrawing.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.MetadataPatch) (models.Drawing, error) {
			require.NotNil(t, patch.IsPinned)
			assert.True(t, *patch.IsPinned)

			updated := recentDrawing
			updated.IsPinned = true
			updated.UpdatedAt = baseTime.Add(3 * time.Hour)
			return updated, nil
		})
	mockLocal.EXPECT().UpsertDrawings(ctx, gomock.Any()).Return(nil)

	updated, err := m.TogglePinned(ctx, recentDrawing.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)

	mirrored, _ := m.GetDrawing(recentDrawing.ID)
	assert.True(t, mirrored.IsPinned)
}

func TestMirror_Toggle_NotInMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMirror(t, ctrl)

	_, err := m.TogglePublic(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotInMirror)
}

func TestMirror_UpdateMetadata_RevertsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing)

	newTitle := "Renamed"
	mockAdapter.EXPECT().
		UpdateMetadata(ctx, recentDrawing.ID, models.MetadataPatch{Title: &newTitle}).
		Return(models.Drawing{}, adapter.ErrNotFound)

	_, err := m.UpdateMetadata(ctx, recentDrawing.ID, models.MetadataPatch{Title: &newTitle})
	require.Error(t, err)

	mirrored, ok := m.GetDrawing(recentDrawing.ID)
	require.True(t, ok)
	assert.Equal(t, "Roadmap Q2", mirrored.Title, "optimistic rename must be reverted")
	assert.True(t, mirrored.UpdatedAt.Equal(recentDrawing.UpdatedAt))
}

func TestMirror_SoftDeleteAndRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing)

	now := baseTime.Add(4 * time.Hour)
	trashed := recentDrawing
	trashed.IsDeleted = true
	trashed.DeletedAt = &now
	trashed.UpdatedAt = now

	mockAdapter.EXPECT().
		UpdateMetadata(ctx, recentDrawing.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.MetadataPatch) (models.Drawing, error) {
			require.NotNil(t, patch.IsDeleted)
			assert.True(t, *patch.IsDeleted)
			return trashed, nil
		})
	mockLocal.EXPECT().UpsertDrawings(ctx, gomock.Any()).Return(nil)

	_, err := m.SoftDelete(ctx, recentDrawing.ID)
	require.NoError(t, err)

	assert.Empty(t, m.Drawings(models.CategoryRecent, ""))
	assert.Len(t, m.Drawings(models.CategoryTrash, ""), 1)

	restored := recentDrawing
	restored.UpdatedAt = now.Add(time.Minute)
	mockAdapter.EXPECT().
		UpdateMetadata(ctx, recentDrawing.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.MetadataPatch) (models.Drawing, error) {
			require.NotNil(t, patch.IsDeleted)
			assert.False(t, *patch.IsDeleted)
			return restored, nil
		})
	mockLocal.EXPECT().UpsertDrawings(ctx, gomock.Any()).Return(nil)

	_, err = m.Restore(ctx, recentDrawing.ID)
	require.NoError(t, err)
	assert.Len(t, m.Drawings(models.CategoryRecent, ""), 1)
}

// ── PermanentlyDelete ───────────────────────────────────────────────────────

func TestMirror_PermanentlyDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, trashedDrawing)

	mockAdapter.EXPECT().DeleteDrawing(ctx, trashedDrawing.ID).Return(trashedDrawing.ID, nil)
	mockLocal.EXPECT().DeleteDrawing(ctx, trashedDrawing.ID).Return(nil)

	require.NoError(t, m.PermanentlyDelete(ctx, trashedDrawing.ID))

	_, ok := m.GetDrawing(trashedDrawing.ID)
	assert.False(t, ok)
}

func TestMirror_PermanentlyDelete_ResyncsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, trashedDrawing)

	mockAdapter.EXPECT().DeleteDrawing(ctx, trashedDrawing.ID).Return("", errors.New("connection reset"))

	// failed delete triggers a full resync from the server
	mockAdapter.EXPECT().
		ListDrawings(ctx, gomock.Any()).
		Return(models.ListDrawingsResponse{}, nil).
		Times(3)
	mockLocal.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(nil)

	err := m.PermanentlyDelete(ctx, trashedDrawing.ID)
	require.Error(t, err)

	_, ok := m.GetDrawing(trashedDrawing.ID)
	assert.False(t, ok, "resync replaced the mirror with the server's state")
}

// ── SaveContent / Reset ─────────────────────────────────────────────────────

func TestMirror_SaveContent_AdvancesTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing)

	newUpdatedAt := baseTime.Add(5 * time.Hour)
	req := models.SaveContentRequest{
		Elements:     []models.Element{{"type": "ellipse"}},
		AppState:     models.AppState{},
		Files:        models.Files{},
		LastModified: &recentDrawing.UpdatedAt,
	}

	mockAdapter.EXPECT().
		SaveContent(ctx, recentDrawing.ID, req).
		Return(models.SaveContentResponse{Success: true, UpdatedAt: newUpdatedAt}, nil)
	mockLocal.EXPECT().UpsertDrawings(ctx, gomock.Any()).Return(nil)

	saved, err := m.SaveContent(ctx, recentDrawing.ID, req)
	require.NoError(t, err)
	assert.True(t, saved.UpdatedAt.Equal(newUpdatedAt))

	mirrored, _ := m.GetDrawing(recentDrawing.ID)
	assert.True(t, mirrored.UpdatedAt.Equal(newUpdatedAt))
}

func TestMirror_SaveContent_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing)

	conflict := &adapter.ConflictError{CurrentUpdatedAt: baseTime.Add(6 * time.Hour)}
	mockAdapter.EXPECT().
		SaveContent(ctx, recentDrawing.ID, gomock.Any()).
		Return(models.SaveContentResponse{}, conflict)

	_, err := m.SaveContent(ctx, recentDrawing.ID, models.SaveContentRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConflict)

	mirrored, _ := m.GetDrawing(recentDrawing.ID)
	assert.True(t, mirrored.UpdatedAt.Equal(recentDrawing.UpdatedAt), "conflicting save must not advance the mirror")
}

func TestMirror_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockLocal := newTestMirror(t, ctrl)
	ctx := context.Background()
	seedMirror(t, m, mockLocal, recentDrawing, trashedDrawing)

	mockLocal.EXPECT().ReplaceAll(ctx, gomock.Nil()).Return(nil)

	require.NoError(t, m.Reset(ctx))
	assert.Empty(t, m.Drawings(models.CategoryRecent, ""))
	assert.Empty(t, m.Drawings(models.CategoryTrash, ""))
}
