package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanRecord is one persisted scan: the signal record, both deterministic
// scores, and the optional generative enrichment, all as JSON documents.
type ScanRecord struct {
	ID           uuid.UUID       `json:"id"`
	RequestedURL string          `json:"requested_url"`
	FinalURL     string          `json:"final_url"`
	HTTPStatus   *int            `json:"http_status,omitempty"`
	Score        *int            `json:"score,omitempty"`
	Bucket       string          `json:"bucket,omitempty"`
	Signals      json.RawMessage `json:"signals"`
	Report       json.RawMessage `json:"report"`
	Anchor       json.RawMessage `json:"anchor"`
	Enrichment   json.RawMessage `json:"enrichment,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ScanSummary is the list-view shape: identity and headline score only.
type ScanSummary struct {
	ID           uuid.UUID `json:"id"`
	RequestedURL string    `json:"requested_url"`
	FinalURL     string    `json:"final_url"`
	Score        *int      `json:"score,omitempty"`
	Bucket       string    `json:"bucket,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
