package tui

import "github.com/MKhiriev/go-sketch-keeper/models"

type refreshDoneMsg struct {
	err error
}

type drawingCreatedMsg struct {
	drawing models.Drawing
	err     error
}

type drawingMutatedMsg struct {
	action string
	err    error
}

type drawingDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
