package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type CommunityRepository interface {
	FindLike(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*dbm.TripLike, error)
	CreateLike(ctx context.Context, like *dbm.TripLike) error
	DeleteLike(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error
	CountLikes(ctx context.Context, tripID uuid.UUID) (int64, error)

	CreateComment(ctx context.Context, comment *dbm.TripComment) error
	ListCommentsByTripID(ctx context.Context, tripID uuid.UUID, page int, pageSize int) ([]dbm.TripComment, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) FindLike(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*dbm.TripLike, error) {
	var like dbm.TripLike
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *communityRepository) CreateLike(ctx context.Context, like *dbm.TripLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *communityRepository) DeleteLike(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&dbm.TripLike{}).Error
}

func (r *communityRepository) CountLikes(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.TripLike{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *communityRepository) CreateComment(ctx context.Context, comment *dbm.TripComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *communityRepository) ListCommentsByTripID(ctx context.Context, tripID uuid.UUID, page int, pageSize int) ([]dbm.TripComment, error) {
	var comments []dbm.TripComment
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
