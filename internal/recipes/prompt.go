// Package recipes implements the consumer of the picker's submit action:
// it turns a submitted ingredient list into a streamed recipe suggestion
// from Ollama, optionally enriched with similar past answers from Qdrant.
package recipes

import (
	"fmt"
	"strings"

	"github.com/IPatronD/Recipefinderplatform/internal/vector"
)

// BuildPrompt assembles the Spanish-language prompt sent to the model.
// context carries previously stored answers for similar ingredient lists;
// it may be empty.
func BuildPrompt(ingredients []string, context []vector.RecipeHit) string {
	var sb strings.Builder

	sb.WriteString("Eres un chef experto. Sugiere una receta casera que use principalmente estos ingredientes: ")
	sb.WriteString(strings.Join(ingredients, ", "))
	sb.WriteString(".\n")
	sb.WriteString("Responde en español con el nombre del plato, la lista de ingredientes y los pasos de preparación.\n")

	if len(context) > 0 {
		sb.WriteString("\nRecetas que sugeriste antes para ingredientes parecidos (evita repetirlas):\n")
		for i, hit := range context {
			sb.WriteString(fmt.Sprintf("%d. Con %s:\n%s\n", i+1, hit.Ingredients, hit.Answer))
		}
	}

	return sb.String()
}
