package config

import (
	"reflect"
	"testing"
)

func TestInitialIngredientsDefaultsToEmpty(t *testing.T) {
	t.Setenv("RECIPEFINDER_INGREDIENTS", "")

	if got := InitialIngredients(); len(got) != 0 {
		t.Errorf("expected no initial ingredients, got %v", got)
	}
}

func TestInitialIngredientsParsesCommaList(t *testing.T) {
	t.Setenv("RECIPEFINDER_INGREDIENTS", "Pollo, Arroz ,,  ")

	got := InitialIngredients()
	if !reflect.DeepEqual(got, []string{"Pollo", "Arroz"}) {
		t.Errorf("expected [Pollo Arroz], got %v", got)
	}
}

func TestDataDirHonorsEnvOverride(t *testing.T) {
	t.Setenv("RECIPEFINDER_HOME", "/tmp/rf-test")

	if got := DataDir(); got != "/tmp/rf-test" {
		t.Errorf("expected /tmp/rf-test, got %q", got)
	}
}

func TestTemperatureFallsBackOnGarbage(t *testing.T) {
	t.Setenv("OLLAMA_TEMPERATURE", "hot")

	if got := temperature(); got != defaultTemp {
		t.Errorf("expected default temperature %v, got %v", defaultTemp, got)
	}
}
