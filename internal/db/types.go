package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a row in the ingestion_runs table
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceURL   string     `json:"source_url"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
