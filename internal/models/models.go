package models

import (
	"time"

	"github.com/google/uuid"
)

// ChangeFreq is the <changefreq> hint of the Sitemaps protocol.
type ChangeFreq string

const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// Valid reports whether f is one of the protocol values.
func (f ChangeFreq) Valid() bool {
	switch f {
	case ChangeFreqAlways, ChangeFreqHourly, ChangeFreqDaily, ChangeFreqWeekly,
		ChangeFreqMonthly, ChangeFreqYearly, ChangeFreqNever:
		return true
	}
	return false
}

// DateLayout is the ISO-8601 date format used for <lastmod>.
const DateLayout = "2006-01-02"

type Run struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	BaseURL     string    `json:"base_url"`
	OutputPath  string    `json:"output_path"`
	Scanned     int       `json:"scanned"`
	Skipped     []string  `json:"skipped"`
	Entries     []URL     `json:"entries,omitempty"`
}
