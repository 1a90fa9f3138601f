// Package ui provides the terminal user interface for the recipe finder.
// It uses the Bubble Tea framework for building interactive terminal
// applications.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/IPatronD/Recipefinderplatform/internal/config"
)

// NewTextInput creates the ingredient entry field: this is the picker's
// draft, cleared only when a draft is successfully committed.
func NewTextInput() textinput.Model {
	ti := textinput.New()

	ti.Placeholder = "Ej: lentejas, espinaca..."
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 40

	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorForeground))

	return ti
}
