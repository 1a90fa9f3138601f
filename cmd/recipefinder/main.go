package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IPatronD/Recipefinderplatform/internal/config"
	"github.com/IPatronD/Recipefinderplatform/internal/fs"
	"github.com/IPatronD/Recipefinderplatform/internal/logger"
	"github.com/IPatronD/Recipefinderplatform/internal/storage"
	"github.com/IPatronD/Recipefinderplatform/internal/ui"
	"github.com/IPatronD/Recipefinderplatform/internal/vector"
)

func main() {
	cfg := config.Load()

	// Ensure the data directory exists before anything writes to it
	if err := fs.EnsureDataDir(cfg.DataDir); err != nil {
		log.Fatalf("Failed to ensure data directory exists: %v", err)
	}

	appLogger, err := logger.GetLogger(filepath.Join(cfg.DataDir, "recipefinder.log"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Qdrant holds the recipe memory; without it, searches still work but
	// nothing is recalled across ingredient lists.
	var recipeStore *vector.Store
	conn, err := vector.Connect(cfg.QdrantAddr)
	if err != nil {
		appLogger.Warn("Qdrant unavailable, recipe memory disabled", map[string]interface{}{"addr": cfg.QdrantAddr})
	} else {
		defer conn.Close()

		embedder := vector.NewOllamaEmbedder(cfg.APIURL, cfg.EmbedModel)
		recipeStore = vector.NewStore(conn, "recipefinder_recipes", embedder, appLogger)
		if err := recipeStore.EnsureCollection(vector.VectorSize); err != nil {
			appLogger.Error("Failed to ensure Qdrant collection exists", err, nil)
			recipeStore = nil
		}
	}

	// Local history database
	var store *storage.Store
	store, err = storage.New(filepath.Join(cfg.DataDir, "history"))
	if err != nil {
		appLogger.Error("Failed to open history database, history disabled", err, nil)
		store = nil
	} else {
		defer store.Close()
	}

	p := tea.NewProgram(
		ui.InitialModel(cfg, recipeStore, store, appLogger),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stdout),
	)

	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
