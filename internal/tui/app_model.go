// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/internal/client"
	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusLifetime = 3 * time.Second

type appModel struct {
	ctx    context.Context
	mirror client.MirrorStore

	categoryIdx int
	list        listModel

	searching   bool
	searchInput textinput.Model
	search      string

	status string

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	// shareBaseURL is the server address used to build share links for
	// public drawings.
	shareBaseURL string

	quitByUser bool
}

func newAppModel(ctx context.Context, mirror client.MirrorStore, shareBaseURL string) appModel {
	input := textinput.New()
	input.Placeholder = "search title"
	input.CharLimit = 120

	return appModel{
		ctx:          ctx,
		mirror:       mirror,
		list:         newListModel(),
		searchInput:  input,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
	}
}

func (m appModel) category() models.Category {
	return models.Categories[m.categoryIdx]
}

func (m *appModel) reloadRows() {
	m.list.drawings = m.mirror.Drawings(m.category(), m.search)
	m.list.clampCursor()
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshDoneMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.reloadRows()
		return m.flash("synchronized with server")

	case drawingCreatedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.reloadRows()
		return m.flash("created " + msg.drawing.Title)

	case drawingMutatedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.reloadRows()
		return m.flash(msg.action)

	case drawingDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.reloadRows()
		return m.flash("permanently deleted")

	case copiedMsg:
		return m.flash("share link copied to clipboard")

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			drawingID := m.pendingDelete
			m.pendingDelete = ""
			return m, m.cmdPermanentlyDelete(drawingID)
		case key.Matches(msg, keys.no):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.search = ""
			m.reloadRows()
			return m, nil
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.search = m.searchInput.Value()
		m.reloadRows()
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.drawings)-1 {
			m.list.idx++
		}

	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.categoryIdx = (m.categoryIdx + 1) % len(models.Categories)
		m.list.idx = 0
		m.reloadRows()
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		m.categoryIdx = (m.categoryIdx - 1 + len(models.Categories)) % len(models.Categories)
		m.list.idx = 0
		m.reloadRows()

	case key.Matches(msg, keys.search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.refresh):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())

	case key.Matches(msg, keys.newItem):
		return m, m.cmdCreate()

	case key.Matches(msg, keys.pin):
		if d, ok := m.list.current(); ok {
			return m, m.cmdToggle("pin", d.ID, m.mirror.TogglePinned)
		}
	case key.Matches(msg, keys.public):
		if d, ok := m.list.current(); ok {
			return m, m.cmdToggle("visibility", d.ID, m.mirror.TogglePublic)
		}
	case key.Matches(msg, keys.archive):
		if d, ok := m.list.current(); ok {
			return m, m.cmdToggle("archive", d.ID, m.mirror.ToggleArchived)
		}

	case key.Matches(msg, keys.trash):
		d, ok := m.list.current()
		if !ok {
			break
		}
		if m.category() == models.CategoryTrash {
			// hard delete needs explicit confirmation
			m.showConfirm = true
			m.confirm = confirmModel{title: d.Title}
			m.pendingDelete = d.ID
			return m, nil
		}
		return m, m.cmdToggle("moved to trash", d.ID, m.mirror.SoftDelete)

	case key.Matches(msg, keys.restore):
		if m.category() != models.CategoryTrash {
			break
		}
		if d, ok := m.list.current(); ok {
			return m, m.cmdToggle("restored", d.ID, m.mirror.Restore)
		}

	case key.Matches(msg, keys.copy):
		if d, ok := m.list.current(); ok && d.IsPublic {
			return m, m.cmdCopyShareLink(d.ID)
		}
	}

	return m, nil
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.mirror.Refresh(m.ctx)}
	}
}

func (m appModel) cmdCreate() tea.Cmd {
	return func() tea.Msg {
		created, err := m.mirror.CreateDrawing(m.ctx, models.CreateDrawingRequest{})
		return drawingCreatedMsg{drawing: created, err: err}
	}
}

func (m appModel) cmdToggle(action, drawingID string, toggle func(context.Context, string) (models.Drawing, error)) tea.Cmd {
	return func() tea.Msg {
		_, err := toggle(m.ctx, drawingID)
		return drawingMutatedMsg{action: action, err: err}
	}
}

func (m appModel) cmdPermanentlyDelete(drawingID string) tea.Cmd {
	return func() tea.Msg {
		return drawingDeletedMsg{err: m.mirror.PermanentlyDelete(m.ctx, drawingID)}
	}
}

func (m appModel) cmdCopyShareLink(drawingID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(m.shareBaseURL + "/drawings/" + drawingID); err != nil {
			return drawingMutatedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m appModel) flash(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusLifetime, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) fail(err error) appModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: err.Error()}
	return m
}

// ── view ────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SketchKeeper"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.searching || m.search != "" {
		b.WriteString("/" + m.searchInput.View() + "\n\n")
	}

	b.WriteString(m.list.render())

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(m.helpLine()))
	return appStyle.Render(b.String())
}

func (m appModel) renderTabs() string {
	tabs := make([]string, 0, len(models.Categories))
	for i, c := range models.Categories {
		if i == m.categoryIdx {
			tabs = append(tabs, activeTabStyle.Render(string(c)))
			continue
		}
		tabs = append(tabs, tabStyle.Render(string(c)))
	}
	return strings.Join(tabs, "  ")
}

func (m appModel) helpLine() string {
	if m.category() == models.CategoryTrash {
		return "r restore  d delete forever  tab category  / search  s sync  q quit"
	}
	return "n new  p pin  b public  a archive  d trash  c copy link  tab category  / search  s sync  q quit"
}
