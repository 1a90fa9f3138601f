// Package ui provides the terminal user interface for the recipe finder.
// This file renders the picker, results and history screens.
package ui

import (
	"fmt"
	"strings"

	"github.com/IPatronD/Recipefinderplatform/internal/ingredient"
	"github.com/IPatronD/Recipefinderplatform/internal/types"
)

// pluralize picks the singular form exactly when n == 1.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// submitLabel is the search action's label; it reflects the current count.
func submitLabel(n int) string {
	return fmt.Sprintf("Buscar recetas (%d %s)", n, pluralize(n, "ingrediente", "ingredientes"))
}

// renderChips renders the confirmed ingredients as removable tokens.
func (m Model) renderChips() string {
	items := m.Ingredients.Items()
	if len(items) == 0 {
		return sectionStyle.Render("Aún no has agregado ingredientes.")
	}

	var sb strings.Builder
	for i, name := range items {
		style := chipStyle
		if m.Focus == FocusChips && i == m.ChipIdx {
			style = chipSelectedStyle
		}
		sb.WriteString(style.Render(name + " ✕"))
	}
	return sb.String()
}

// renderSuggestions renders the catalog entries not yet confirmed.
func (m Model) renderSuggestions() string {
	suggestions := ingredient.Suggestions(m.Ingredients)
	if len(suggestions) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(sectionStyle.Render("Sugerencias:"))
	sb.WriteString("\n")
	for i, name := range suggestions {
		style := suggestionStyle
		if m.Focus == FocusSuggestions && i == m.SuggestionIdx {
			style = suggestionSelectedStyle
		}
		sb.WriteString(style.Render(name))
	}
	return sb.String()
}

// renderPicker renders the main screen: chips, draft input, suggestions and
// the two action controls.
func (m Model) renderPicker() string {
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Tus ingredientes:"))
	sb.WriteString("\n")
	sb.WriteString(m.renderChips())
	sb.WriteString("\n\n")

	sb.WriteString(m.TextInput.View())
	sb.WriteString("\n")

	// The add action is available only with a non-empty draft.
	if strings.TrimSpace(m.TextInput.Value()) != "" {
		sb.WriteString(buttonStyle.Render("[Enter] Agregar"))
	} else {
		sb.WriteString(buttonDisabledStyle.Render("[Enter] Agregar"))
	}
	sb.WriteString("\n\n")

	if suggestions := m.renderSuggestions(); suggestions != "" {
		sb.WriteString(suggestions)
		sb.WriteString("\n\n")
	}

	// The search action is available only with a non-empty list.
	label := "[Ctrl+B] " + submitLabel(m.Ingredients.Len())
	if m.Ingredients.Len() > 0 {
		sb.WriteString(buttonStyle.Render(label))
	} else {
		sb.WriteString(buttonDisabledStyle.Render(label))
	}

	return sb.String()
}

// renderResults renders the streamed (or recalled) recipe suggestion.
func (m Model) renderResults() string {
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Buscando con: " + strings.Join(m.LastSearch, ", ")))
	sb.WriteString("\n\n")

	if m.Answer != "" {
		sb.WriteString(m.Answer)
	}
	if m.Streaming {
		sb.WriteString("▌")
	}

	return sb.String()
}

// renderHistory renders the stored search history, newest first.
func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(sectionStyle.Render("Historial de búsquedas"))
	sb.WriteString("\n\n")

	if len(m.History) == 0 {
		sb.WriteString("Todavía no hay búsquedas guardadas.")
		return sb.String()
	}

	for i, rec := range m.History {
		line := fmt.Sprintf("%s  %s",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			strings.Join(rec.Ingredients, ", "))
		if i == m.HistoryIdx {
			sb.WriteString(buttonStyle.Render("➜ " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// View renders the current state of the UI based on the current screen mode.
func (m Model) View() string {
	var content string
	var instructions string

	switch m.ScreenMode {
	case types.ModeResults:
		content = m.renderResults()
		if m.Streaming {
			instructions = helpStyle.Render("Generando… Esc: cancelar, Ctrl+W: salir")
		} else {
			instructions = helpStyle.Render("Esc: volver, Ctrl+W: salir")
		}

	case types.ModeHistory:
		content = m.renderHistory()
		instructions = helpStyle.Render("↑/↓: navegar • Enter: ver receta • Esc: volver")

	default:
		content = m.renderPicker()
		instructions = helpStyle.Render("Tab: cambiar foco • Enter: agregar/quitar • Ctrl+B: buscar • Ctrl+R: historial • Esc: salir")
	}

	statusBar := ""
	if m.StatusMsg != "" {
		statusBar = fmt.Sprintf("\n\n%s", statusStyle.Render(m.StatusMsg))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n",
		titleStyle.Render("¿Qué cocino hoy?"),
		content,
		instructions,
		statusBar,
	)
}
