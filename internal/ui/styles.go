// Package ui provides the terminal user interface for the recipe finder.
// This file contains style definitions for various UI elements using the
// lipgloss library.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/IPatronD/Recipefinderplatform/internal/config"
)

var (
	// titleStyle defines the styling for the application title/header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorBackground)).
			Background(lipgloss.Color(config.MainColorForeground)).
			PaddingRight(4).
			PaddingLeft(4)

	// helpStyle defines the styling for help/instruction text.
	helpStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	// sectionStyle defines the styling for section labels.
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	// chipStyle renders a confirmed ingredient as a small token.
	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("22")).
			Padding(0, 1).
			MarginRight(1)

	// chipSelectedStyle highlights the chip the cursor is on.
	chipSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("203")).
				Padding(0, 1).
				MarginRight(1)

	// suggestionStyle renders an available catalog suggestion.
	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Padding(0, 1).
			MarginRight(1)

	// suggestionSelectedStyle highlights the suggestion the cursor is on.
	suggestionSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("111")).
				Padding(0, 1).
				MarginRight(1)

	// buttonStyle renders an enabled action.
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorForeground))

	// buttonDisabledStyle renders an action that is currently unavailable.
	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	// statusStyle defines the styling for status messages.
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Italic(true)
)
