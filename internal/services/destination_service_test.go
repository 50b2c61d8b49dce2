package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type destinationRepoStub struct {
	listDestinations      func(ctx context.Context, filter repositories.DestinationFilter) ([]dbm.Destination, error)
	listDestinationsByIDs func(ctx context.Context, ids []string) ([]dbm.Destination, error)
}

func (s *destinationRepoStub) ListDestinations(ctx context.Context, filter repositories.DestinationFilter) ([]dbm.Destination, error) {
	return s.listDestinations(ctx, filter)
}

func (s *destinationRepoStub) ListDestinationsByIDs(ctx context.Context, ids []string) ([]dbm.Destination, error) {
	return s.listDestinationsByIDs(ctx, ids)
}

type embeddingRepoStub struct {
	matches  []dbm.DestinationEmbedding
	upserted []dbm.DestinationEmbedding
}

func (s *embeddingRepoStub) ListDestinationsByVector(vector pgvector.Vector, limit int) ([]dbm.DestinationEmbedding, error) {
	return s.matches, nil
}

func (s *embeddingRepoStub) UpsertDestinationEmbedding(embedding dbm.DestinationEmbedding) error {
	s.upserted = append(s.upserted, embedding)
	return nil
}

func TestSuggestDestinationsEmptyQuery(t *testing.T) {
	svc := NewDestinationService(&destinationRepoStub{}, &embeddingRepoStub{}, utils.NewLocalEmbeddingClient())

	_, err := svc.SuggestDestinations(context.Background(), "", 8)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSuggestDestinationsNoMatchesIsEmptyNotError(t *testing.T) {
	svc := NewDestinationService(&destinationRepoStub{}, &embeddingRepoStub{}, utils.NewLocalEmbeddingClient())

	out, err := svc.SuggestDestinations(context.Background(), "quiet beaches", 8)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSuggestDestinationsResolvesMatchedIDs(t *testing.T) {
	lisbon := dbm.Destination{Name: "Lisbon", Country: "Portugal", Region: "europe"}
	embRepo := &embeddingRepoStub{matches: []dbm.DestinationEmbedding{
		{DestinationID: "dest-lisbon", Name: "Lisbon"},
	}}

	var gotIDs []string
	destRepo := &destinationRepoStub{
		listDestinationsByIDs: func(ctx context.Context, ids []string) ([]dbm.Destination, error) {
			gotIDs = ids
			return []dbm.Destination{lisbon}, nil
		},
	}
	svc := NewDestinationService(destRepo, embRepo, utils.NewLocalEmbeddingClient())

	out, err := svc.SuggestDestinations(context.Background(), "coastal city breaks", 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"dest-lisbon"}, gotIDs)
	require.Len(t, out, 1)
	assert.Equal(t, "Lisbon", out[0].Name)
}

func TestIndexDestinationUpsertsVector(t *testing.T) {
	lisbon := dbm.Destination{Name: "Lisbon", Country: "Portugal", Region: "europe", PriceRange: "moderate"}
	lisbon.ID = uuid.New()

	embRepo := &embeddingRepoStub{}
	destRepo := &destinationRepoStub{
		listDestinationsByIDs: func(ctx context.Context, ids []string) ([]dbm.Destination, error) {
			return []dbm.Destination{lisbon}, nil
		},
	}
	svc := NewDestinationService(destRepo, embRepo, utils.NewLocalEmbeddingClient())

	err := svc.IndexDestination(context.Background(), lisbon.ID.String())
	require.NoError(t, err)
	require.Len(t, embRepo.upserted, 1)
	assert.Equal(t, lisbon.ID.String(), embRepo.upserted[0].DestinationID)
	assert.Len(t, embRepo.upserted[0].Embedding.Slice(), 1536)
}

func TestIndexDestinationUnknownID(t *testing.T) {
	destRepo := &destinationRepoStub{
		listDestinationsByIDs: func(ctx context.Context, ids []string) ([]dbm.Destination, error) {
			return nil, nil
		},
	}
	svc := NewDestinationService(destRepo, &embeddingRepoStub{}, utils.NewLocalEmbeddingClient())

	err := svc.IndexDestination(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestLocalEmbeddingIsDeterministic(t *testing.T) {
	client := utils.NewLocalEmbeddingClient()

	a, err := client.GetEmbedding(context.Background(), "mountain huts")
	require.NoError(t, err)
	b, err := client.GetEmbedding(context.Background(), "mountain huts")
	require.NoError(t, err)
	assert.Equal(t, a.Slice(), b.Slice())
	assert.Len(t, a.Slice(), 1536)
}
