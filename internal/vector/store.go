// Package vector keeps a memory of past recipe answers in Qdrant so new
// searches can be enriched with what was suggested before for a similar
// ingredient list.
package vector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/IPatronD/Recipefinderplatform/internal/logger"
)

const (
	defaultQdrantAddress = "localhost:6334"
	defaultCollection    = "recipefinder_recipes"
	// mxbai-embed-large produces 1024-dimensional vectors
	VectorSize = 1024
)

// Embedder defines the interface for text embedding models
type Embedder interface {
	Embed(text string) ([]float32, error)
}

// RecipeHit is one stored recipe returned by a similarity search.
type RecipeHit struct {
	Ingredients string
	Answer      string
	Score       float32
}

// Store handles storing and retrieving recipe vectors from Qdrant
type Store struct {
	collectionsClient pb.CollectionsClient
	pointsClient      pb.PointsClient
	collection        string
	embedder          Embedder
	logger            *logger.Logger
}

// NewStore creates a new Store instance over an existing gRPC connection
func NewStore(conn *grpc.ClientConn, collection string, embedder Embedder, logger *logger.Logger) *Store {
	if collection == "" {
		collection = defaultCollection
	}
	return &Store{
		collectionsClient: pb.NewCollectionsClient(conn),
		pointsClient:      pb.NewPointsClient(conn),
		collection:        collection,
		embedder:          embedder,
		logger:            logger,
	}
}

// Connect creates a new gRPC connection to the Qdrant server
func Connect(address string) (*grpc.ClientConn, error) {
	if address == "" {
		address = defaultQdrantAddress
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	return conn, nil
}

// logInfo and logError tolerate a nil logger; the store stays usable when the
// caller wired it without one.
func (s *Store) logInfo(msg string, data map[string]interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, data)
	}
}

func (s *Store) logError(msg string, err error, data map[string]interface{}) {
	if s.logger != nil {
		s.logger.Error(msg, err, data)
	}
}

// Embed creates a vector embedding for the given text
func (s *Store) Embed(text string) ([]float32, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("no embedder configured")
	}
	return s.embedder.Embed(text)
}

// EnsureCollection creates the collection if it doesn't exist
func (s *Store) EnsureCollection(vectorSize uint64) error {
	_, err := s.collectionsClient.Get(context.Background(), &pb.GetCollectionInfoRequest{
		CollectionName: s.collection,
	})
	if err == nil {
		s.logInfo(fmt.Sprintf("Collection '%s' already exists, skipping creation", s.collection), nil)
		return nil
	}

	s.logInfo(fmt.Sprintf("Collection '%s' does not exist, creating it...", s.collection), nil)

	_, createErr := s.collectionsClient.Create(context.Background(), &pb.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if createErr != nil {
		errMsg := fmt.Sprintf("failed to create collection '%s'", s.collection)
		s.logError(errMsg, createErr, nil)
		return fmt.Errorf("%s: %w", errMsg, createErr)
	}

	s.logInfo(fmt.Sprintf("Created collection '%s' with vector size %d", s.collection, vectorSize), nil)
	return nil
}

// storeVector upserts a single vector with metadata
func (s *Store) storeVector(id string, vector []float32, metadata map[string]string) error {
	payload := make(map[string]*pb.Value)
	for k, v := range metadata {
		payload[k] = &pb.Value{
			Kind: &pb.Value_StringValue{
				StringValue: v,
			},
		}
	}

	point := &pb.PointStruct{
		Id: &pb.PointId{
			PointIdOptions: &pb.PointId_Uuid{
				Uuid: id,
			},
		},
		Vectors: &pb.Vectors{
			VectorsOptions: &pb.Vectors_Vector{
				Vector: &pb.Vector{
					Data: vector,
				},
			},
		},
		Payload: payload,
	}

	_, err := s.pointsClient.Upsert(context.Background(), &pb.UpsertPoints{
		CollectionName: s.collection,
		Points:         []*pb.PointStruct{point},
	})
	if err != nil {
		s.logError("failed to store vector in Qdrant", err,
			map[string]interface{}{"collection": s.collection, "point_id": id})
		return fmt.Errorf("failed to store vector in Qdrant: %w", err)
	}

	s.logInfo("stored vector in Qdrant",
		map[string]interface{}{"point_id": id, "collection": s.collection})
	return nil
}

// StoreRecipe stores a completed recipe search: the ingredient list the user
// submitted and the answer that came back. The ingredient text is what gets
// embedded, so later similarity searches match on ingredients.
func (s *Store) StoreRecipe(ingredients []string, answer string) error {
	key := strings.Join(ingredients, ", ")

	exists, err := s.RecipeExists(key, answer)
	if err != nil {
		return fmt.Errorf("failed to check for existing recipe: %w", err)
	}
	if exists {
		s.logInfo("recipe already stored in Qdrant",
			map[string]interface{}{"ingredients": key})
		return nil
	}

	embedding, err := s.Embed(key)
	if err != nil {
		return fmt.Errorf("failed to embed ingredient list: %w", err)
	}

	err = s.storeVector(
		uuid.New().String(),
		embedding,
		map[string]string{
			"type":        "recipe",
			"ingredients": key,
			"answer":      answer,
			"stored_at":   time.Now().Format(time.RFC3339),
		},
	)
	if err != nil {
		s.logError("error storing recipe vector", err, nil)
		return fmt.Errorf("failed to store recipe: %w", err)
	}

	return nil
}

// SimilarRecipes finds stored recipes whose ingredient list is close to the
// given one, most similar first.
func (s *Store) SimilarRecipes(ingredients []string, limit uint64) ([]RecipeHit, error) {
	embedding, err := s.Embed(strings.Join(ingredients, ", "))
	if err != nil {
		return nil, fmt.Errorf("failed to embed ingredient list: %w", err)
	}

	result, err := s.pointsClient.Search(context.Background(), &pb.SearchPoints{
		CollectionName: s.collection,
		Vector:         embedding,
		Limit:          limit,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{
				Enable: true,
			},
		},
		Filter: recipeFilter(),
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]RecipeHit, 0, len(result.GetResult()))
	for _, point := range result.GetResult() {
		payload := point.GetPayload()
		if payload == nil {
			continue
		}
		hits = append(hits, RecipeHit{
			Ingredients: payload["ingredients"].GetStringValue(),
			Answer:      payload["answer"].GetStringValue(),
			Score:       point.GetScore(),
		})
	}

	return hits, nil
}

// RecipeExists checks whether this exact ingredients/answer pair is already stored
func (s *Store) RecipeExists(ingredientsKey, answer string) (bool, error) {
	embedding, err := s.Embed(ingredientsKey)
	if err != nil {
		return false, fmt.Errorf("failed to embed ingredient list: %w", err)
	}

	searchResult, err := s.pointsClient.Search(context.Background(), &pb.SearchPoints{
		CollectionName: s.collection,
		Vector:         embedding,
		Limit:          5, // Check top 5 most similar
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{
				Enable: true,
			},
		},
		Filter: recipeFilter(),
	})
	if err != nil {
		return false, fmt.Errorf("search failed: %w", err)
	}

	for _, result := range searchResult.GetResult() {
		payload := result.GetPayload()
		if payload == nil {
			continue
		}
		storedI, hasI := payload["ingredients"]
		storedA, hasA := payload["answer"]
		if hasI && hasA && storedI.GetStringValue() == ingredientsKey && storedA.GetStringValue() == answer {
			return true, nil
		}
	}

	return false, nil
}

func recipeFilter() *pb.Filter {
	return &pb.Filter{
		Must: []*pb.Condition{
			{
				ConditionOneOf: &pb.Condition_Field{
					Field: &pb.FieldCondition{
						Key: "type",
						Match: &pb.Match{
							MatchValue: &pb.Match_Keyword{
								Keyword: "recipe",
							},
						},
					},
				},
			},
		},
	}
}
