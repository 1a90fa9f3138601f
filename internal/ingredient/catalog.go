package ingredient

// Catalog is the fixed set of suggested ingredients offered for one-click
// addition. The order here is the order they render in.
var Catalog = []string{
	"Pollo",
	"Arroz",
	"Tomate",
	"Cebolla",
	"Ajo",
	"Pimiento",
	"Huevo",
	"Papa",
	"Zanahoria",
	"Queso",
	"Leche",
	"Pasta",
	"Atún",
	"Carne molida",
}

// Suggestions returns the catalog entries not already present in l, keeping
// the catalog's order. It is a pure derivation; calling it never mutates
// anything.
func Suggestions(l *List) []string {
	remaining := make([]string, 0, len(Catalog))
	for _, name := range Catalog {
		if !l.Has(name) {
			remaining = append(remaining, name)
		}
	}
	return remaining
}
