package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IPatronD/Recipefinderplatform/internal/config"
	"github.com/IPatronD/Recipefinderplatform/internal/ingredient"
	"github.com/IPatronD/Recipefinderplatform/internal/types"
)

func newTestModel(initial ...string) *Model {
	cfg := &config.Config{Initial: initial}
	return InitialModel(cfg, nil, nil, nil)
}

func press(m *Model, keyType tea.KeyType) {
	m.Update(tea.KeyMsg{Type: keyType})
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypeAndEnterAddsIngredient(t *testing.T) {
	m := newTestModel()

	typeText(m, "Pollo")
	press(m, tea.KeyEnter)

	if got := m.Ingredients.Items(); !reflect.DeepEqual(got, []string{"Pollo"}) {
		t.Errorf("expected [Pollo], got %v", got)
	}
	if m.TextInput.Value() != "" {
		t.Errorf("expected draft cleared after successful add, got %q", m.TextInput.Value())
	}
}

func TestEnterTrimsDraft(t *testing.T) {
	m := newTestModel()

	m.TextInput.SetValue("  Pollo  ")
	press(m, tea.KeyEnter)

	if got := m.Ingredients.Items(); !reflect.DeepEqual(got, []string{"Pollo"}) {
		t.Errorf("expected [Pollo], got %v", got)
	}
}

func TestEnterWithWhitespaceDraftIsInert(t *testing.T) {
	m := newTestModel()

	m.TextInput.SetValue("   ")
	press(m, tea.KeyEnter)

	if m.Ingredients.Len() != 0 {
		t.Errorf("expected empty list, got %v", m.Ingredients.Items())
	}
	if m.TextInput.Value() != "   " {
		t.Errorf("expected rejected draft to stay, got %q", m.TextInput.Value())
	}
}

func TestEnterWithDuplicateDraftKeepsDraft(t *testing.T) {
	m := newTestModel("Pollo")

	typeText(m, "Pollo")
	press(m, tea.KeyEnter)

	if m.Ingredients.Len() != 1 {
		t.Errorf("expected single Pollo entry, got %v", m.Ingredients.Items())
	}
	if m.TextInput.Value() != "Pollo" {
		t.Errorf("expected duplicate draft to stay, got %q", m.TextInput.Value())
	}
}

func TestSuggestionEnterAddsLiteralValue(t *testing.T) {
	m := newTestModel()

	press(m, tea.KeyTab) // focus moves to the suggestion row
	if m.Focus != FocusSuggestions {
		t.Fatalf("expected suggestion focus, got %v", m.Focus)
	}
	press(m, tea.KeyEnter)

	want := ingredient.Catalog[0]
	if got := m.Ingredients.Items(); !reflect.DeepEqual(got, []string{want}) {
		t.Errorf("expected [%s], got %v", want, got)
	}
	for _, name := range ingredient.Suggestions(m.Ingredients) {
		if name == want {
			t.Errorf("added suggestion %q still offered", want)
		}
	}
}

func TestChipEnterRemovesSelectedIngredient(t *testing.T) {
	m := newTestModel("Pollo", "Arroz")

	press(m, tea.KeyTab) // suggestions
	press(m, tea.KeyTab) // chips
	if m.Focus != FocusChips {
		t.Fatalf("expected chip focus, got %v", m.Focus)
	}

	press(m, tea.KeyRight) // select Arroz
	press(m, tea.KeyEnter)

	if got := m.Ingredients.Items(); !reflect.DeepEqual(got, []string{"Pollo"}) {
		t.Errorf("expected [Pollo], got %v", got)
	}
}

func TestRemovingLastChipReturnsFocusToInput(t *testing.T) {
	m := newTestModel("Pollo")

	press(m, tea.KeyTab) // suggestions
	press(m, tea.KeyTab) // chips
	press(m, tea.KeyEnter)

	if m.Ingredients.Len() != 0 {
		t.Fatalf("expected empty list, got %v", m.Ingredients.Items())
	}
	if m.Focus != FocusInput {
		t.Errorf("expected focus back on input, got %v", m.Focus)
	}
}

func TestSubmitWithEmptyListNeverStartsSearch(t *testing.T) {
	m := newTestModel()

	calls := 0
	m.StartSearch = func([]string) tea.Cmd {
		calls++
		return nil
	}

	press(m, tea.KeyCtrlB)

	if calls != 0 {
		t.Errorf("expected no search with empty list, got %d calls", calls)
	}
	if m.ScreenMode != types.ModePicker {
		t.Errorf("expected picker mode after inert submit, got %v", m.ScreenMode)
	}
}

func TestSubmitStartsSearchOnceWithOrderedCopy(t *testing.T) {
	m := newTestModel("Pollo", "Arroz")

	calls := 0
	var got []string
	m.StartSearch = func(items []string) tea.Cmd {
		calls++
		got = items
		return nil
	}

	press(m, tea.KeyCtrlB)

	if calls != 1 {
		t.Fatalf("expected exactly one search call, got %d", calls)
	}
	if !reflect.DeepEqual(got, []string{"Pollo", "Arroz"}) {
		t.Errorf("expected insertion order preserved, got %v", got)
	}

	// The collaborator receives its own copy.
	got[0] = "Queso"
	if m.Ingredients.Items()[0] != "Pollo" {
		t.Error("mutating the submitted slice changed the confirmed list")
	}

	// A second submit while the first is streaming is inert.
	press(m, tea.KeyCtrlB)
	if calls != 1 {
		t.Errorf("expected streaming submit to be inert, got %d calls", calls)
	}
}

func TestEscOnResultsReturnsToPicker(t *testing.T) {
	m := newTestModel("Pollo")
	m.StartSearch = func([]string) tea.Cmd { return nil }

	press(m, tea.KeyCtrlB)
	if m.ScreenMode != types.ModeResults {
		t.Fatalf("expected results mode, got %v", m.ScreenMode)
	}

	press(m, tea.KeyEsc) // cancels the stream
	if m.Streaming {
		t.Error("expected Esc to stop streaming")
	}
	press(m, tea.KeyEsc) // back to the picker
	if m.ScreenMode != types.ModePicker {
		t.Errorf("expected picker mode, got %v", m.ScreenMode)
	}
}

func TestTokenMsgAppendsToAnswer(t *testing.T) {
	m := newTestModel()
	m.Streaming = true

	m.Update(types.TokenMsg("Arroz "))
	m.Update(types.TokenMsg("con pollo"))

	if m.Answer != "Arroz con pollo" {
		t.Errorf("expected streamed tokens appended, got %q", m.Answer)
	}
}

func TestEscWhileStreamingOnlySignalsStop(t *testing.T) {
	m := newTestModel("Pollo")
	m.StartSearch = func([]string) tea.Cmd { return nil }
	press(m, tea.KeyCtrlB)

	m.ensureChannels()
	streamCh := m.StreamCh
	errCh := m.ErrCh
	stopCh := m.StopCh

	press(m, tea.KeyEsc)

	select {
	case <-stopCh:
	default:
		t.Error("expected the stop channel to be closed")
	}
	if m.StreamCh != nil || m.ErrCh != nil || m.StopCh != nil {
		t.Error("expected the model to drop its stream channel references")
	}

	// The stream goroutine owns these channels; it must still be able to
	// send on them after the cancel gesture.
	streamCh <- "late token"
	errCh <- nil
}

func TestLateTokenAfterCancelIsDropped(t *testing.T) {
	m := newTestModel("Pollo")
	m.StartSearch = func([]string) tea.Cmd { return nil }
	press(m, tea.KeyCtrlB)
	m.Answer = "Arroz"

	press(m, tea.KeyEsc) // cancel the stream
	m.Update(types.TokenMsg(" con pollo"))

	if m.Answer != "Arroz" {
		t.Errorf("expected late token dropped after cancel, got %q", m.Answer)
	}
}

func TestStreamEndStopsStreaming(t *testing.T) {
	m := newTestModel("Pollo")
	m.StartSearch = func([]string) tea.Cmd { return nil }
	press(m, tea.KeyCtrlB)

	m.Update(types.StreamEndMsg{})

	if m.Streaming {
		t.Error("expected streaming to stop on StreamEndMsg")
	}
}

func TestStatusMsgSetsAndExpires(t *testing.T) {
	m := newTestModel()

	m.Update(types.StatusMsg{Message: "Búsqueda guardada"})
	if m.StatusMsg != "Búsqueda guardada" {
		t.Errorf("expected status set, got %q", m.StatusMsg)
	}

	m.Update(statusExpiredMsg{})
	if m.StatusMsg != "" {
		t.Errorf("expected status cleared, got %q", m.StatusMsg)
	}
}

func TestInitialIngredientsSeedList(t *testing.T) {
	m := newTestModel("Ajo")

	if got := m.Ingredients.Items(); !reflect.DeepEqual(got, []string{"Ajo"}) {
		t.Errorf("expected [Ajo], got %v", got)
	}
	if n := len(ingredient.Suggestions(m.Ingredients)); n != len(ingredient.Catalog)-1 {
		t.Errorf("expected %d suggestions, got %d", len(ingredient.Catalog)-1, n)
	}
}
