package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CommunityServiceInterface interface {
	ToggleLike(ctx context.Context, tripID string, userID string) (*resp.LikeStatusResponse, error)
	LikeStatus(ctx context.Context, tripID string, userID string) (*resp.LikeStatusResponse, error)
	AddComment(ctx context.Context, tripID string, userID string, content string) (*resp.CommentResponse, error)
	ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]resp.CommentResponse, error)
}

type CommunityService struct {
	tripRepo      repositories.TripRepository
	communityRepo repositories.CommunityRepository
}

func NewCommunityService(
	tripRepo repositories.TripRepository,
	communityRepo repositories.CommunityRepository,
) CommunityServiceInterface {
	return &CommunityService{
		tripRepo:      tripRepo,
		communityRepo: communityRepo,
	}
}

// ToggleLike flips the (trip, user) like and reports the fresh count.
func (s *CommunityService) ToggleLike(ctx context.Context, tripID string, userID string) (*resp.LikeStatusResponse, error) {
	trip, user, err := s.parsePair(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.communityRepo.FindLike(ctx, trip, user)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.communityRepo.DeleteLike(ctx, trip, user); err != nil {
			return nil, utils.ErrWriteFailed
		}
	} else {
		like := dbm.TripLike{TripID: trip, UserID: user}
		if err := s.communityRepo.CreateLike(ctx, &like); err != nil {
			return nil, utils.ErrWriteFailed
		}
	}

	count, err := s.communityRepo.CountLikes(ctx, trip)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.LikeStatusResponse{
		Liked: existing == nil,
		Count: count,
	}, nil
}

// LikeStatus reports the count and, when userID is given, whether that
// user has liked the trip.
func (s *CommunityService) LikeStatus(ctx context.Context, tripID string, userID string) (*resp.LikeStatusResponse, error) {
	trip, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	count, err := s.communityRepo.CountLikes(ctx, trip)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	liked := false
	if userID != "" {
		user, err := uuid.Parse(userID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		existing, err := s.communityRepo.FindLike(ctx, trip, user)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		liked = existing != nil
	}

	return &resp.LikeStatusResponse{Liked: liked, Count: count}, nil
}

func (s *CommunityService) AddComment(ctx context.Context, tripID string, userID string, content string) (*resp.CommentResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrInvalidInput
	}

	trip, user, err := s.parsePair(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	comment := dbm.TripComment{
		TripID:  trip,
		UserID:  user,
		Content: content,
	}
	if err := s.communityRepo.CreateComment(ctx, &comment); err != nil {
		return nil, utils.ErrWriteFailed
	}

	out := buildCommentResponse(comment)
	return &out, nil
}

func (s *CommunityService) ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]resp.CommentResponse, error) {
	trip, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	comments, err := s.communityRepo.ListCommentsByTripID(ctx, trip, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, buildCommentResponse(c))
	}
	return out, nil
}

// parsePair validates ids and confirms the trip exists before any write.
func (s *CommunityService) parsePair(ctx context.Context, tripID string, userID string) (uuid.UUID, uuid.UUID, error) {
	trip, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	user, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrUnauthenticated
	}

	existing, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return uuid.Nil, uuid.Nil, utils.ErrTripNotFound
	}

	return trip, user, nil
}

func buildCommentResponse(c dbm.TripComment) resp.CommentResponse {
	return resp.CommentResponse{
		ID:        c.ID.String(),
		TripID:    c.TripID.String(),
		UserID:    c.UserID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
