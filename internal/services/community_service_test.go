package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

// memCommunityRepo keeps likes and comments in memory, enough to
// exercise the toggle semantics end to end.
type memCommunityRepo struct {
	likes    map[uuid.UUID]map[uuid.UUID]bool
	comments []dbm.TripComment
}

func newMemCommunityRepo() *memCommunityRepo {
	return &memCommunityRepo{likes: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (r *memCommunityRepo) FindLike(ctx context.Context, tripID, userID uuid.UUID) (*dbm.TripLike, error) {
	if r.likes[tripID][userID] {
		return &dbm.TripLike{TripID: tripID, UserID: userID}, nil
	}
	return nil, nil
}

func (r *memCommunityRepo) CreateLike(ctx context.Context, like *dbm.TripLike) error {
	if r.likes[like.TripID] == nil {
		r.likes[like.TripID] = make(map[uuid.UUID]bool)
	}
	r.likes[like.TripID][like.UserID] = true
	return nil
}

func (r *memCommunityRepo) DeleteLike(ctx context.Context, tripID, userID uuid.UUID) error {
	delete(r.likes[tripID], userID)
	return nil
}

func (r *memCommunityRepo) CountLikes(ctx context.Context, tripID uuid.UUID) (int64, error) {
	return int64(len(r.likes[tripID])), nil
}

func (r *memCommunityRepo) CreateComment(ctx context.Context, comment *dbm.TripComment) error {
	comment.ID = uuid.New()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *memCommunityRepo) ListCommentsByTripID(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]dbm.TripComment, error) {
	var out []dbm.TripComment
	for _, c := range r.comments {
		if c.TripID == tripID {
			out = append(out, c)
		}
	}
	return out, nil
}

func existingTripRepo(trip *dbm.Trip) *tripRepoStub {
	return &tripRepoStub{
		getTripByID: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			if tripID == trip.ID.String() {
				return trip, nil
			}
			return nil, nil
		},
	}
}

func TestToggleLikeTwice(t *testing.T) {
	trip := ownedTestTrip(uuid.New())
	svc := NewCommunityService(existingTripRepo(trip), newMemCommunityRepo())
	user := uuid.New().String()

	status, err := svc.ToggleLike(context.Background(), trip.ID.String(), user)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(1), status.Count)

	status, err = svc.ToggleLike(context.Background(), trip.ID.String(), user)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(0), status.Count)
}

func TestToggleLikeCountsDistinctUsers(t *testing.T) {
	trip := ownedTestTrip(uuid.New())
	svc := NewCommunityService(existingTripRepo(trip), newMemCommunityRepo())

	_, err := svc.ToggleLike(context.Background(), trip.ID.String(), uuid.New().String())
	require.NoError(t, err)

	status, err := svc.ToggleLike(context.Background(), trip.ID.String(), uuid.New().String())
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.Equal(t, int64(2), status.Count)
}

func TestToggleLikeMissingTrip(t *testing.T) {
	repo := &tripRepoStub{
		getTripByID: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return nil, nil
		},
	}
	svc := NewCommunityService(repo, newMemCommunityRepo())

	_, err := svc.ToggleLike(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestLikeStatusAnonymous(t *testing.T) {
	trip := ownedTestTrip(uuid.New())
	community := newMemCommunityRepo()
	svc := NewCommunityService(existingTripRepo(trip), community)

	_, err := svc.ToggleLike(context.Background(), trip.ID.String(), uuid.New().String())
	require.NoError(t, err)

	status, err := svc.LikeStatus(context.Background(), trip.ID.String(), "")
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.Equal(t, int64(1), status.Count)
}

func TestAddCommentRejectsBlankContent(t *testing.T) {
	trip := ownedTestTrip(uuid.New())
	svc := NewCommunityService(existingTripRepo(trip), newMemCommunityRepo())

	_, err := svc.AddComment(context.Background(), trip.ID.String(), uuid.New().String(), "   \n\t")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddCommentRoundTrip(t *testing.T) {
	trip := ownedTestTrip(uuid.New())
	svc := NewCommunityService(existingTripRepo(trip), newMemCommunityRepo())
	user := uuid.New().String()

	comment, err := svc.AddComment(context.Background(), trip.ID.String(), user, "Great route!")
	require.NoError(t, err)
	assert.Equal(t, "Great route!", comment.Content)

	comments, err := svc.ListComments(context.Background(), trip.ID.String(), 1, 20)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}
