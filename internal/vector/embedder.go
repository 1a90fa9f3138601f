package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
)

// OllamaEmbedder implements the Embedder interface using Ollama's API
type OllamaEmbedder struct {
	baseURL string
	model   string
}

// NewOllamaEmbedder creates a new Ollama embedder
func NewOllamaEmbedder(baseURL, model string) *OllamaEmbedder {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "mxbai-embed-large"
	}
	return &OllamaEmbedder{
		baseURL: baseURL,
		model:   model,
	}
}

// EmbedRequest represents the request body for Ollama's embedding API
type EmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// EmbedResponse represents the response from Ollama's embedding API
type EmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed converts text to a vector using Ollama's embedding model
func (e *OllamaEmbedder) Embed(text string) ([]float32, error) {
	reqBody := EmbedRequest{
		Model:  e.model,
		Prompt: text,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest(
		"POST",
		e.baseURL+"/api/embeddings",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama API returned non-200 status: %s", resp.Status)
	}

	var embedResp EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode Ollama response: %w", err)
	}

	if len(embedResp.Embedding) == 0 {
		return nil, fmt.Errorf("no embedding data returned from Ollama")
	}

	return embedResp.Embedding, nil
}

// StaticEmbedder derives a VectorSize-dimensional vector from the text alone,
// so the store can be exercised without a running embedding model. Equal texts
// always map to equal vectors.
type StaticEmbedder struct{}

func NewStaticEmbedder() *StaticEmbedder {
	return &StaticEmbedder{}
}

// Embed hashes the text into each component of the vector.
func (e *StaticEmbedder) Embed(text string) ([]float32, error) {
	h := fnv.New32a()
	vector := make([]float32, VectorSize)
	for i := range vector {
		h.Write([]byte(text))
		h.Write([]byte{byte(i)})
		vector[i] = float32(h.Sum32()%1000) / 1000.0
	}
	return vector, nil
}
