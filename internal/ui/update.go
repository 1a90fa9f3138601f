// Package ui provides the terminal user interface for the recipe finder.
// This file handles the update loop: every user gesture lands here and is
// translated into a mutation of the ingredient list or a search command.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IPatronD/Recipefinderplatform/internal/ingredient"
	"github.com/IPatronD/Recipefinderplatform/internal/recipes"
	"github.com/IPatronD/Recipefinderplatform/internal/types"
)

// statusExpiredMsg clears the transient status line.
type statusExpiredMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = 3 * time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return statusExpiredMsg{} })
}

// Init starts the text input cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and advances the model state. Each gesture is
// processed synchronously and completely before the next one.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case types.TokenMsg:
		// A token that arrives after the user canceled belongs to a stream
		// we already let go of; drop it.
		if !m.Streaming {
			return m, nil
		}
		m.Answer += string(msg)
		if m.StreamCh != nil && m.ErrCh != nil {
			return m, recipes.NextTokenCmd(m.StreamCh, m.ErrCh)
		}

	case types.StreamEndMsg:
		m.Streaming = false
		m.releaseStream()

	case types.StreamErrMsg:
		m.handleStreamError(msg)

	case types.StatusMsg:
		if msg.Message != "" {
			m.StatusMsg = msg.Message
			return m, clearStatusAfter(msg.Duration)
		}

	case statusExpiredMsg:
		m.StatusMsg = ""
	}

	return m, nil
}

// handleKeyMsg routes keyboard input by screen mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+W quits from anywhere.
	if msg.Type == tea.KeyCtrlW {
		m.releaseStream()
		return m, tea.Quit
	}

	switch m.ScreenMode {
	case types.ModeResults:
		return m.handleResultsKey(msg)
	case types.ModeHistory:
		return m.handleHistoryKey(msg)
	default:
		return m.handlePickerKey(msg)
	}
}

// handlePickerKey handles input on the main picker screen.
func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.cycleFocus(1)
		return m, nil

	case tea.KeyShiftTab:
		m.cycleFocus(-1)
		return m, nil

	case tea.KeyCtrlB: // buscar
		return m.handleSubmit()

	case tea.KeyCtrlR: // historial de recetas
		return m.openHistory()
	}

	switch m.Focus {
	case FocusSuggestions:
		return m.handleSuggestionsKey(msg)
	case FocusChips:
		return m.handleChipsKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

// handleInputKey handles input while the text field has focus. Enter commits
// the draft; anything else is regular editing.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.addFromDraft()
		return m, nil
	}

	var cmd tea.Cmd
	m.TextInput, cmd = m.TextInput.Update(msg)
	return m, cmd
}

// addFromDraft commits the draft text. The field is cleared exactly when the
// add succeeded; a rejected draft (empty or duplicate) stays put.
func (m *Model) addFromDraft() {
	if m.Ingredients.Add(m.TextInput.Value()) {
		m.TextInput.Reset()
		m.clampCursors()
	}
}

// handleSuggestionsKey moves the suggestion cursor and adds the highlighted
// suggestion on Enter.
func (m *Model) handleSuggestionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := ingredient.Suggestions(m.Ingredients)
	if len(suggestions) == 0 {
		m.Focus = FocusInput
		return m, nil
	}

	switch msg.Type {
	case tea.KeyLeft, tea.KeyUp:
		m.SuggestionIdx = (m.SuggestionIdx - 1 + len(suggestions)) % len(suggestions)

	case tea.KeyRight, tea.KeyDown:
		m.SuggestionIdx = (m.SuggestionIdx + 1) % len(suggestions)

	case tea.KeyEnter:
		m.Ingredients.Add(suggestions[m.SuggestionIdx])
		m.clampCursors()
	}

	return m, nil
}

// handleChipsKey moves the chip cursor and removes the selected ingredient on
// Enter, Delete or Backspace.
func (m *Model) handleChipsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.Ingredients.Items()
	if len(items) == 0 {
		m.Focus = FocusInput
		return m, nil
	}

	switch msg.Type {
	case tea.KeyLeft, tea.KeyUp:
		m.ChipIdx = (m.ChipIdx - 1 + len(items)) % len(items)

	case tea.KeyRight, tea.KeyDown:
		m.ChipIdx = (m.ChipIdx + 1) % len(items)

	case tea.KeyEnter, tea.KeyDelete, tea.KeyBackspace:
		m.Ingredients.Remove(items[m.ChipIdx])
		m.clampCursors()
	}

	return m, nil
}

// handleSubmit hands a copy of the confirmed list to the search collaborator.
// With an empty list the gesture is inert.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.Ingredients.Len() == 0 || m.Streaming {
		return m, nil
	}

	items := m.Ingredients.Items()
	m.LastSearch = items
	m.Answer = ""
	m.Streaming = true
	m.ScreenMode = types.ModeResults

	if m.Logger != nil {
		m.Logger.Info("starting recipe search", map[string]interface{}{"ingredients": items})
	}

	return m, m.StartSearch(items)
}

// openHistory loads the stored search history and switches to the history
// screen.
func (m *Model) openHistory() (tea.Model, tea.Cmd) {
	if m.Store == nil {
		m.StatusMsg = "El historial no está disponible"
		return m, clearStatusAfter(3 * time.Second)
	}

	history, err := recipes.ListSearches(m.Store)
	if err != nil {
		m.logError("failed to load search history", err)
		m.StatusMsg = "No se pudo cargar el historial"
		return m, clearStatusAfter(3 * time.Second)
	}

	m.History = history
	m.HistoryIdx = 0
	m.ScreenMode = types.ModeHistory
	return m, nil
}

// handleResultsKey handles input on the results screen.
func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if m.Streaming {
			m.stopStreaming()
			return m, nil
		}
		m.ScreenMode = types.ModePicker
		return m, nil
	}
	return m, nil
}

// handleHistoryKey handles input on the history screen.
func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ScreenMode = types.ModePicker

	case tea.KeyUp:
		if m.HistoryIdx > 0 {
			m.HistoryIdx--
		}

	case tea.KeyDown:
		if m.HistoryIdx < len(m.History)-1 {
			m.HistoryIdx++
		}

	case tea.KeyEnter:
		if len(m.History) > 0 {
			rec := m.History[m.HistoryIdx]
			m.LastSearch = rec.Ingredients
			m.Answer = rec.Answer
			m.Streaming = false
			m.ScreenMode = types.ModeResults
		}
	}

	return m, nil
}

// handleStreamError surfaces a failed search on the results screen.
func (m *Model) handleStreamError(msg types.StreamErrMsg) {
	m.Streaming = false
	m.releaseStream()

	m.logError("recipe stream failed", msg.Err)
	if m.Answer == "" {
		m.Answer = "No se pudo obtener una receta. Verifica que Ollama esté disponible."
	}
}

// cycleFocus moves focus between the input field, the suggestion row and the
// chip row, skipping empty sections.
func (m *Model) cycleFocus(dir int) {
	order := []Focus{FocusInput, FocusSuggestions, FocusChips}

	available := func(f Focus) bool {
		switch f {
		case FocusSuggestions:
			return len(ingredient.Suggestions(m.Ingredients)) > 0
		case FocusChips:
			return m.Ingredients.Len() > 0
		default:
			return true
		}
	}

	cur := 0
	for i, f := range order {
		if f == m.Focus {
			cur = i
			break
		}
	}

	for i := 1; i <= len(order); i++ {
		next := order[((cur+dir*i)%len(order)+len(order))%len(order)]
		if available(next) {
			m.setFocus(next)
			return
		}
	}
}

func (m *Model) setFocus(f Focus) {
	m.Focus = f
	if f == FocusInput {
		m.TextInput.Focus()
	} else {
		m.TextInput.Blur()
	}
}

// clampCursors keeps the suggestion and chip cursors inside their shrinking
// or growing rows, and pulls focus back to the input when a row empties.
func (m *Model) clampCursors() {
	if n := len(ingredient.Suggestions(m.Ingredients)); n == 0 {
		m.SuggestionIdx = 0
		if m.Focus == FocusSuggestions {
			m.setFocus(FocusInput)
		}
	} else if m.SuggestionIdx >= n {
		m.SuggestionIdx = n - 1
	}

	if n := m.Ingredients.Len(); n == 0 {
		m.ChipIdx = 0
		if m.Focus == FocusChips {
			m.setFocus(FocusInput)
		}
	} else if m.ChipIdx >= n {
		m.ChipIdx = n - 1
	}
}
