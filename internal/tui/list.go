package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	drawings []models.Drawing
	idx      int
	loading  bool
	spinner  spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Drawing, bool) {
	if len(m.drawings) == 0 || m.idx < 0 || m.idx >= len(m.drawings) {
		return models.Drawing{}, false
	}
	return m.drawings[m.idx], true
}

func (m *listModel) clampCursor() {
	if m.idx >= len(m.drawings) {
		m.idx = len(m.drawings) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// drawingFlags renders the per-row state markers: pinned, public, archived.
func drawingFlags(d models.Drawing) string {
	flags := []string{" ", " ", " "}
	if d.IsPinned {
		flags[0] = "*"
	}
	if d.IsPublic {
		flags[1] = "@"
	}
	if d.IsArchived {
		flags[2] = "#"
	}
	return "[" + strings.Join(flags, "") + "]"
}

func (m listModel) render() string {
	if m.loading {
		return m.spinner.View() + " loading...\n"
	}
	if len(m.drawings) == 0 {
		return "no drawings here\n"
	}

	var b strings.Builder
	for i, d := range m.drawings {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %-40s %s\n",
			cursor, drawingFlags(d), truncate(d.Title, 40), d.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
