package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"time"
)

type DestinationEmbedding struct {
	DestinationID string `gorm:"primaryKey;column:destination_id"`
	Name          string
	Country       string
	Region        string
	Tags          pq.StringArray  `gorm:"type:text[]"`
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}
