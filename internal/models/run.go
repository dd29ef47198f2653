package models

import (
	"time"

	"github.com/google/uuid"
)

// NewRun creates a history record with a generated UUID and timestamp
func NewRun(baseURL, outputPath string) *Run {
	return &Run{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		BaseURL:     baseURL,
		OutputPath:  outputPath,
	}
}

// Included returns how many files made it into the sitemap.
func (r *Run) Included() int {
	return r.Scanned - len(r.Skipped)
}
