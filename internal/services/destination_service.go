package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"
	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, filter repositories.DestinationFilter) ([]resp.DestinationResponse, error)
	SuggestDestinations(ctx context.Context, query string, limit int) ([]resp.DestinationResponse, error)
	IndexDestination(ctx context.Context, destinationID string) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	embeddingRepo   repositories.IDestinationEmbeddingRepository
	embeddings      utils.EmbeddingClientInterface
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	embeddingRepo repositories.IDestinationEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		embeddingRepo:   embeddingRepo,
		embeddings:      embeddings,
	}
}

func (s *DestinationService) ListDestinations(ctx context.Context, filter repositories.DestinationFilter) ([]resp.DestinationResponse, error) {
	destinations, err := s.destinationRepo.ListDestinations(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildDestinationResponses(destinations), nil
}

// SuggestDestinations embeds the free-text query and ranks destinations
// by vector similarity. When nothing clears the similarity floor the
// result is simply empty, not an error.
func (s *DestinationService) SuggestDestinations(ctx context.Context, query string, limit int) ([]resp.DestinationResponse, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.embeddings.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("query embedding failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	matches, err := s.embeddingRepo.ListDestinationsByVector(vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(matches) == 0 {
		return []resp.DestinationResponse{}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.DestinationID)
	}

	destinations, err := s.destinationRepo.ListDestinationsByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildDestinationResponses(destinations), nil
}

// IndexDestination (re)computes the search vector for one destination
// from its name, country and description.
func (s *DestinationService) IndexDestination(ctx context.Context, destinationID string) error {
	destinations, err := s.destinationRepo.ListDestinationsByIDs(ctx, []string{destinationID})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if len(destinations) == 0 {
		return utils.ErrInvalidInput
	}
	d := destinations[0]

	text := fmt.Sprintf("%s, %s. %s", d.Name, d.Country, d.Description)
	vector, err := s.embeddings.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("destination embedding failed: %v", err)
		return utils.ErrDatabaseError
	}

	embedding := dbm.DestinationEmbedding{
		DestinationID: d.ID.String(),
		Name:          d.Name,
		Country:       d.Country,
		Region:        d.Region,
		Tags:          pq.StringArray{d.Region, d.PriceRange},
		Embedding:     vector,
	}
	if err := s.embeddingRepo.UpsertDestinationEmbedding(embedding); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func buildDestinationResponses(destinations []dbm.Destination) []resp.DestinationResponse {
	out := make([]resp.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, resp.DestinationResponse{
			ID:          d.ID.String(),
			Name:        d.Name,
			Country:     d.Country,
			Region:      d.Region,
			PriceRange:  d.PriceRange,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Rating:      d.Rating,
		})
	}
	return out
}
