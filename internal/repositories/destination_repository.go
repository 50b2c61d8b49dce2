package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type DestinationFilter struct {
	Region     string
	PriceRange string
	Search     string
	Limit      int
}

type DestinationRepository interface {
	ListDestinations(ctx context.Context, filter DestinationFilter) ([]dbm.Destination, error)
	ListDestinationsByIDs(ctx context.Context, ids []string) ([]dbm.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) ListDestinations(ctx context.Context, filter DestinationFilter) ([]dbm.Destination, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Destination{})

	if filter.Region != "" && filter.Region != "all" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.PriceRange != "" && filter.PriceRange != "all" {
		q = q.Where("price_range = ?", filter.PriceRange)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR country ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var destinations []dbm.Destination
	err := q.Order("rating DESC").Limit(limit).Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) ListDestinationsByIDs(ctx context.Context, ids []string) ([]dbm.Destination, error) {
	if len(ids) == 0 {
		return []dbm.Destination{}, nil
	}
	var destinations []dbm.Destination
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
