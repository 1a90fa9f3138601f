package ingredient

import (
	"reflect"
	"testing"
)

func TestAddTrimsAndDeduplicates(t *testing.T) {
	l := NewList()

	if !l.Add("  Pollo  ") {
		t.Fatal("expected trimmed add to succeed")
	}
	if l.Add("Pollo") {
		t.Error("expected duplicate add to be rejected")
	}

	if got := l.Items(); !reflect.DeepEqual(got, []string{"Pollo"}) {
		t.Errorf("expected [Pollo], got %v", got)
	}
}

func TestAddRejectsEmptyAndWhitespace(t *testing.T) {
	l := NewList()

	if l.Add("") {
		t.Error("expected empty add to be rejected")
	}
	if l.Add("   ") {
		t.Error("expected whitespace-only add to be rejected")
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %v", l.Items())
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	l := NewList()
	for _, name := range []string{"Pollo", "Arroz", "Ajo"} {
		l.Add(name)
	}

	if got := l.Items(); !reflect.DeepEqual(got, []string{"Pollo", "Arroz", "Ajo"}) {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestAddIsCaseSensitive(t *testing.T) {
	l := NewList()
	l.Add("Pollo")

	if !l.Add("pollo") {
		t.Error("expected differently cased value to be a distinct ingredient")
	}
}

func TestRemove(t *testing.T) {
	l := NewList("Pollo", "Arroz")

	if !l.Remove("Arroz") {
		t.Fatal("expected remove of present ingredient to succeed")
	}
	if got := l.Items(); !reflect.DeepEqual(got, []string{"Pollo"}) {
		t.Errorf("expected [Pollo], got %v", got)
	}

	if l.Remove("Cebolla") {
		t.Error("expected remove of absent ingredient to be a no-op")
	}
	if l.Len() != 1 {
		t.Errorf("list changed by no-op remove: %v", l.Items())
	}
}

func TestNewListAppliesSameRules(t *testing.T) {
	l := NewList("  Ajo ", "Ajo", "", "   ")

	if got := l.Items(); !reflect.DeepEqual(got, []string{"Ajo"}) {
		t.Errorf("expected [Ajo], got %v", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	l := NewList("Pollo")

	items := l.Items()
	items[0] = "Queso"

	if got := l.Items()[0]; got != "Pollo" {
		t.Errorf("mutating the returned slice changed the list: %q", got)
	}
}

func TestSuggestionsExcludeConfirmed(t *testing.T) {
	l := NewList("Ajo")

	got := Suggestions(l)
	if len(got) != len(Catalog)-1 {
		t.Fatalf("expected %d suggestions, got %d", len(Catalog)-1, len(got))
	}
	for _, name := range got {
		if name == "Ajo" {
			t.Error("suggestions contain a confirmed ingredient")
		}
	}
}

func TestSuggestionsKeepCatalogOrder(t *testing.T) {
	l := NewList("Arroz", "Papa")

	got := Suggestions(l)
	want := make([]string, 0, len(Catalog))
	for _, name := range Catalog {
		if name != "Arroz" && name != "Papa" {
			want = append(want, name)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suggestions out of catalog order:\n got %v\nwant %v", got, want)
	}
}

func TestCatalogSize(t *testing.T) {
	if len(Catalog) != 14 {
		t.Errorf("expected 14 catalog entries, got %d", len(Catalog))
	}
}
