// Package tui is the terminal front end of the client: a category-tabbed
// drawing browser over the mirror store with pin/share/archive/trash actions.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-sketch-keeper/internal/client"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the program themselves.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	mirror       client.MirrorStore
	shareBaseURL string
	logger       *logger.Logger
}

func New(mirror client.MirrorStore, shareBaseURL string, logger *logger.Logger) *TUI {
	return &TUI{mirror: mirror, shareBaseURL: shareBaseURL, logger: logger}
}

// Run starts the interactive browser and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.mirror, t.shareBaseURL)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
