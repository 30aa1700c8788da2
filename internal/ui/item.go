package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/picklist/pkg/selection"
)

const (
	markerCursor   = "> "
	markerSelected = "* "
	markerNone     = "  "
)

var (
	label         = lipgloss.NewStyle()
	labelSelected = label.Foreground(Green)

	cursorMarker = lipgloss.NewStyle().Bold(true)
)

// RenderItem renders a single list row. The cursor row gets a bold marker and
// label, selected labels are green.
func RenderItem(it selection.Item, cursor bool) string {
	style := label
	if it.Selected {
		style = labelSelected
	}
	if !cursor {
		return markerNone + style.Render(it.Label)
	}
	marker := markerCursor
	if it.Selected {
		marker = markerSelected
	}
	return cursorMarker.Render(marker) + style.Bold(true).Render(it.Label)
}
