// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/adapter"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/store"
	"github.com/MKhiriev/go-sketch-keeper/internal/utils"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

// ErrNotInMirror is returned by mutations addressing a drawing the mirror has
// never seen. Refresh first.
var ErrNotInMirror = errors.New("drawing is not in the local mirror")

// refreshPageSize is the page size used when paging the server during Refresh.
const refreshPageSize = 100

// refreshCategories together cover every drawing exactly once: recent holds
// everything that is neither archived nor trashed, archived and trash hold
// the rest.
var refreshCategories = []models.Category{
	models.CategoryRecent,
	models.CategoryArchived,
	models.CategoryTrash,
}

type mirrorStore struct {
	adapter adapter.ServerAdapter
	local   store.LocalDrawingRepository
	idGen   *utils.DrawingIDGenerator

	mu       sync.RWMutex
	drawings map[string]models.Drawing

	logger *logger.Logger
}

// NewMirrorStore constructs the client's drawing mirror over the given server
// adapter and local cache repository.
func NewMirrorStore(serverAdapter adapter.ServerAdapter, local store.LocalDrawingRepository, logger *logger.Logger) MirrorStore {
	return &mirrorStore{
		adapter:  serverAdapter,
		local:    local,
		idGen:    utils.NewDrawingIDGenerator(),
		drawings: make(map[string]models.Drawing),
		logger:   logger,
	}
}

func (m *mirrorStore) Load(ctx context.Context) error {
	cached, err := m.local.GetAllDrawings(ctx)
	if err != nil {
		return fmt.Errorf("load local drawing cache: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawings = make(map[string]models.Drawing, len(cached))
	for _, d := range cached {
		m.drawings[d.ID] = d
	}
	return nil
}

func (m *mirrorStore) Refresh(ctx context.Context) error {
	var fetched []models.Drawing
	for _, category := range refreshCategories {
		page, err := m.fetchCategory(ctx, category)
		if err != nil {
			return fmt.Errorf("refresh %s drawings: %w", category, err)
		}
		fetched = append(fetched, page...)
	}

	if err := m.local.ReplaceAll(ctx, fetched); err != nil {
		return fmt.Errorf("persist refreshed drawings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawings = make(map[string]models.Drawing, len(fetched))
	for _, d := range fetched {
		m.drawings[d.ID] = d
	}

	m.logger.Debug().Int("drawings", len(fetched)).Msg("mirror refreshed from server")
	return nil
}

// fetchCategory pages through one server-side listing view until the reported
// total is collected.
func (m *mirrorStore) fetchCategory(ctx context.Context, category models.Category) ([]models.Drawing, error) {
	var collected []models.Drawing
	for page := 1; ; page++ {
		resp, err := m.adapter.ListDrawings(ctx, models.ListQuery{
			Category: category,
			Page:     page,
			PageSize: refreshPageSize,
		})
		if err != nil {
			return nil, err
		}

		collected = append(collected, resp.Drawings...)
		if len(resp.Drawings) == 0 || int64(len(collected)) >= resp.Total {
			return collected, nil
		}
	}
}

func (m *mirrorStore) Drawings(category models.Category, search string) []models.Drawing {
	m.mu.RLock()
	all := make([]models.Drawing, 0, len(m.drawings))
	for _, d := range m.drawings {
		all = append(all, d)
	}
	m.mu.RUnlock()

	filtered := models.FilterByCategory(all, category)

	if search = strings.TrimSpace(search); search != "" {
		needle := strings.ToLower(search)
		matched := filtered[:0]
		for _, d := range filtered {
			if strings.Contains(strings.ToLower(d.Title), needle) {
				matched = append(matched, d)
			}
		}
		filtered = matched
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].UpdatedAt.Equal(filtered[j].UpdatedAt) {
			return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})
	return filtered
}

func (m *mirrorStore) GetDrawing(drawingID string) (models.Drawing, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drawings[drawingID]
	return d, ok
}

func (m *mirrorStore) GetContent(ctx context.Context, drawingID string) (models.DrawingContent, error) {
	content, err := m.adapter.GetContent(ctx, drawingID)
	if err != nil {
		return models.DrawingContent{}, fmt.Errorf("fetch drawing content: %w", err)
	}
	return content, nil
}

func (m *mirrorStore) CreateDrawing(ctx context.Context, req models.CreateDrawingRequest) (models.Drawing, error) {
	drawingID := m.idGen.Generate()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.DefaultDrawingTitle
	}
	now := time.Now().UTC()
	placeholder := models.Drawing{
		ID:          drawingID,
		Title:       title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m.put(placeholder)

	created, err := m.adapter.CreateDrawing(ctx, drawingID, req)
	if err != nil {
		m.remove(drawingID)
		return models.Drawing{}, fmt.Errorf("create drawing on server: %w", err)
	}

	m.put(created)
	if err = m.local.UpsertDrawings(ctx, created); err != nil {
		m.logger.Warn().Err(err).Str("drawing_id", drawingID).Msg("failed to cache created drawing")
	}
	return created, nil
}

func (m *mirrorStore) UpdateMetadata(ctx context.Context, drawingID string, patch models.MetadataPatch) (models.Drawing, error) {
	snapshot, mirrored := m.GetDrawing(drawingID)
	if mirrored {
		m.put(applyPatch(snapshot, patch))
	}

	updated, err := m.adapter.UpdateMetadata(ctx, drawingID, patch)
	if err != nil {
		if mirrored {
			m.put(snapshot)
		}
		return models.Drawing{}, fmt.Errorf("update drawing metadata on server: %w", err)
	}

	m.put(updated)
	if err = m.local.UpsertDrawings(ctx, updated); err != nil {
		m.logger.Warn().Err(err).Str("drawing_id", drawingID).Msg("failed to cache updated drawing")
	}
	return updated, nil
}

func (m *mirrorStore) TogglePinned(ctx context.Context, drawingID string) (models.Drawing, error) {
	current, ok := m.GetDrawing(drawingID)
	if !ok {
		return models.Drawing{}, ErrNotInMirror
	}
	pinned := !current.IsPinned
	return m.UpdateMetadata(ctx, drawingID, models.MetadataPatch{IsPinned: &pinned})
}

func (m *mirrorStore) TogglePublic(ctx context.Context, drawingID string) (models.Drawing, error) {
	current, ok := m.GetDrawing(drawingID)
	if !ok {
		return models.Drawing{}, ErrNotInMirror
	}
	public := !current.IsPublic
	return m.UpdateMetadata(ctx, drawingID, models.MetadataPatch{IsPublic: &public})
}

func (m *mirrorStore) ToggleArchived(ctx context.Context, drawingID string) (models.Drawing, error) {
	current, ok := m.GetDrawing(drawingID)
	if !ok {
		return models.Drawing{}, ErrNotInMirror
	}
	archived := !current.IsArchived
	return m.UpdateMetadata(ctx, drawingID, models.MetadataPatch{IsArchived: &archived})
}

func (m *mirrorStore) SoftDelete(ctx context.Context, drawingID string) (models.Drawing, error) {
	deleted := true
	return m.UpdateMetadata(ctx, drawingID, models.MetadataPatch{IsDeleted: &deleted})
}

func (m *mirrorStore) Restore(ctx context.Context, drawingID string) (models.Drawing, error) {
	deleted := false
	return m.UpdateMetadata(ctx, drawingID, models.MetadataPatch{IsDeleted: &deleted})
}

func (m *mirrorStore) PermanentlyDelete(ctx context.Context, drawingID string) error {
	if _, err := m.adapter.DeleteDrawing(ctx, drawingID); err != nil {
		// The delete may or may not have landed; resync instead of guessing.
		if refreshErr := m.Refresh(ctx); refreshErr != nil {
			m.logger.Warn().Err(refreshErr).Msg("failed to resync mirror after delete error")
		}
		return fmt.Errorf("delete drawing on server: %w", err)
	}

	m.remove(drawingID)
	if err := m.local.DeleteDrawing(ctx, drawingID); err != nil {
		m.logger.Warn().Err(err).Str("drawing_id", drawingID).Msg("failed to evict deleted drawing from cache")
	}
	return nil
}

func (m *mirrorStore) SaveContent(ctx context.Context, drawingID string, req models.SaveContentRequest) (models.SaveContentResponse, error) {
	saved, err := m.adapter.SaveContent(ctx, drawingID, req)
	if err != nil {
		return models.SaveContentResponse{}, fmt.Errorf("save drawing content on server: %w", err)
	}

	if current, ok := m.GetDrawing(drawingID); ok {
		current.UpdatedAt = saved.UpdatedAt
		m.put(current)
		if err = m.local.UpsertDrawings(ctx, current); err != nil {
			m.logger.Warn().Err(err).Str("drawing_id", drawingID).Msg("failed to cache saved drawing timestamp")
		}
	}
	return saved, nil
}

func (m *mirrorStore) Reset(ctx context.Context) error {
	m.mu.Lock()
	m.drawings = make(map[string]models.Drawing)
	m.mu.Unlock()

	if err := m.local.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("clear local drawing cache: %w", err)
	}
	return nil
}

func (m *mirrorStore) put(d models.Drawing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawings[d.ID] = d
}

func (m *mirrorStore) remove(drawingID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drawings, drawingID)
}

// applyPatch projects the server's patch semantics onto a mirrored drawing so
// the UI reflects the change before the server confirms it.
func applyPatch(d models.Drawing, patch models.MetadataPatch) models.Drawing {
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = patch.Description
	}
	if patch.IsPinned != nil {
		d.IsPinned = *patch.IsPinned
	}
	if patch.IsPublic != nil {
		d.IsPublic = *patch.IsPublic
	}
	if patch.IsArchived != nil {
		d.IsArchived = *patch.IsArchived
	}
	if patch.IsDeleted != nil {
		d.IsDeleted = *patch.IsDeleted
		if d.IsDeleted {
			now := time.Now().UTC()
			d.DeletedAt = &now
		} else {
			d.DeletedAt = nil
		}
	}
	d.UpdatedAt = time.Now().UTC()
	return d
}
