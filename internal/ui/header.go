package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headerContainer = lipgloss.NewStyle().Padding(2, 0, 1, 0)
	headerTitle     = lipgloss.NewStyle().Bold(true)
	headerInfo      = lipgloss.NewStyle().Foreground(Secondary)
)

type Header struct {
	Title string
	Info  string
	Width int
}

// NewHeader creates the banner shown above the list
func NewHeader(title string) Header {
	return Header{Title: title}
}

// View renders the title on the left and the info text on the right, filling
// the space in between when the width is known.
func (h Header) View() string {
	w := lipgloss.Width
	left := headerTitle.Render(h.Title)
	if h.Info == "" {
		return headerContainer.Render(left) + "\n"
	}
	right := headerInfo.Render(h.Info)
	gap := max(h.Width-w(left)-w(right), 2)
	space := lipgloss.NewStyle().Width(gap).Render("")
	return headerContainer.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, space, right)) + "\n"
}
