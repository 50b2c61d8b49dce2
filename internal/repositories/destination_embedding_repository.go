package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "globetrotter/internal/models/db_models"
)

type IDestinationEmbeddingRepository interface {
	ListDestinationsByVector(vector pgvector.Vector, limit int) ([]dbm.DestinationEmbedding, error)
	UpsertDestinationEmbedding(embedding dbm.DestinationEmbedding) error
}

type DestinationEmbeddingRepository struct {
	db *gorm.DB
}

func NewDestinationEmbeddingRepository(db *gorm.DB) IDestinationEmbeddingRepository {
	return &DestinationEmbeddingRepository{db: db}
}

func (r *DestinationEmbeddingRepository) ListDestinationsByVector(vector pgvector.Vector, limit int) ([]dbm.DestinationEmbedding, error) {
	var results []dbm.DestinationEmbedding

	if limit <= 0 {
		limit = 8
	}
	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destination_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertDestinationEmbedding replaces the row on re-index.
func (r *DestinationEmbeddingRepository) UpsertDestinationEmbedding(embedding dbm.DestinationEmbedding) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "destination_id"}},
		UpdateAll: true,
	}).Create(&embedding).Error
}
