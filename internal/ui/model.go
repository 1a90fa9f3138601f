// Package ui provides the terminal user interface for the recipe finder.
// This file defines the main application model: the ingredient picker state
// and its wiring to the search collaborator.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IPatronD/Recipefinderplatform/internal/config"
	"github.com/IPatronD/Recipefinderplatform/internal/ingredient"
	"github.com/IPatronD/Recipefinderplatform/internal/logger"
	"github.com/IPatronD/Recipefinderplatform/internal/recipes"
	"github.com/IPatronD/Recipefinderplatform/internal/storage"
	"github.com/IPatronD/Recipefinderplatform/internal/types"
	"github.com/IPatronD/Recipefinderplatform/internal/vector"
)

// Focus identifies which part of the picker currently receives key input.
type Focus int

const (
	FocusInput Focus = iota
	FocusSuggestions
	FocusChips
)

// SearchStarter launches a recipe search for the submitted ingredient list.
// The model calls it exactly once per submit gesture, never with an empty
// list, and always with its own copy of the list.
type SearchStarter func(ingredients []string) tea.Cmd

// Model represents the picker state and its collaborators.
type Model struct {
	TextInput   textinput.Model
	Ingredients *ingredient.List

	Focus         Focus
	SuggestionIdx int
	ChipIdx       int
	ScreenMode    types.ScreenMode

	// Results screen
	Answer     string
	LastSearch []string
	Streaming  bool

	// History screen
	History    []recipes.Search
	HistoryIdx int

	StatusMsg string

	// StartSearch is the boundary to the search collaborator. Tests swap it
	// out for a recorder; everywhere else it defaults to the Ollama-backed
	// search below.
	StartSearch SearchStarter

	Config  *config.Config
	Recipes *vector.Store
	Store   *storage.Store
	Logger  *logger.Logger

	// Stream handling
	StreamCh chan string
	ErrCh    chan error
	StopCh   chan struct{}
}

// InitialModel creates the picker model. The confirmed list starts from the
// configured initial ingredients (normally empty); recipeStore and store may
// be nil, in which case searches are streamed but not remembered.
func InitialModel(cfg *config.Config, recipeStore *vector.Store, store *storage.Store, log *logger.Logger) *Model {
	m := &Model{
		TextInput:   NewTextInput(),
		Ingredients: ingredient.NewList(cfg.Initial...),
		Focus:       FocusInput,
		ScreenMode:  types.ModePicker,
		Config:      cfg,
		Recipes:     recipeStore,
		Store:       store,
		Logger:      log,
	}
	m.StartSearch = m.startSearchCmd

	return m
}

// startSearchCmd is the default search collaborator: retrieve similar past
// recipes from Qdrant, stream a new suggestion from Ollama, and remember the
// finished answer in both stores.
func (m *Model) startSearchCmd(items []string) tea.Cmd {
	m.ensureChannels()
	responseCh := make(chan string, 1)

	start := func() tea.Msg {
		var hits []vector.RecipeHit
		if m.Recipes != nil {
			h, err := m.Recipes.SimilarRecipes(items, 3)
			if err != nil {
				m.logError("failed to retrieve similar recipes", err)
			} else {
				hits = h
			}
		}

		prompt := recipes.BuildPrompt(items, hits)
		return recipes.StartStreamCmd(
			m.Config.APIURL, m.Config.Model, prompt, m.Config.Temperature,
			m.StreamCh, m.ErrCh, m.StopCh, responseCh,
		)()
	}

	saveCmd := func() tea.Msg {
		fullResponse, ok := <-responseCh
		if !ok || fullResponse == "" {
			return nil
		}

		if m.Store != nil {
			if _, err := recipes.SaveSearch(m.Store, items, fullResponse); err != nil {
				m.logError("failed to save search to history", err)
				return types.StatusMsg{
					Message:  "No se pudo guardar la búsqueda",
					Duration: 3 * time.Second,
				}
			}
		}
		if m.Recipes != nil {
			if err := m.Recipes.StoreRecipe(items, fullResponse); err != nil {
				m.logError("failed to index recipe in Qdrant", err)
			}
		}

		return types.StatusMsg{
			Message:  "Búsqueda guardada en el historial",
			Duration: 3 * time.Second,
		}
	}

	return tea.Batch(start, recipes.NextTokenCmd(m.StreamCh, m.ErrCh), saveCmd)
}

func (m *Model) logError(msg string, err error) {
	if m.Logger != nil {
		m.Logger.Error(msg, err, nil)
	}
}

// ensureChannels initializes the stream channels if they don't exist.
func (m *Model) ensureChannels() {
	if m.StreamCh == nil {
		m.StreamCh = make(chan string, 64)
	}
	if m.ErrCh == nil {
		m.ErrCh = make(chan error, 1)
	}
	if m.StopCh == nil {
		m.StopCh = make(chan struct{})
	}
}

// stopStreaming cancels any ongoing stream.
func (m *Model) stopStreaming() {
	m.Streaming = false
	m.releaseStream()
}

// releaseStream signals the stream goroutine to stop and drops this side's
// channel references. Only StopCh is closed here: the stream goroutine is the
// sole writer to StreamCh and ErrCh and owns their closure, so closing them
// from the UI would race with its sends.
func (m *Model) releaseStream() {
	if m.StopCh != nil {
		close(m.StopCh)
		m.StopCh = nil
	}
	m.StreamCh = nil
	m.ErrCh = nil
}
