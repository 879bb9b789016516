package models

import "time"

// RawRecord is an untyped field-to-value mapping as decoded from the remote
// source, prior to validation. Nothing past the mapper boundary handles one.
type RawRecord map[string]any

// Account is a validated, immutable owner of posts. Email is the natural key
// for deduplication.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,contains=@"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post belongs to exactly one persisted account. Body may be empty but is
// never absent.
type Post struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"accountId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Outcome classifies how a single record fared during an import.
type Outcome string

const (
	OutcomeImported Outcome = "imported"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeRejected Outcome = "rejected"
)

// RecordResult is the per-record verdict, indexed by position in the remote
// collection.
type RecordResult struct {
	Index   int     `json:"index"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

// ImportReport aggregates one full import run. Rejections keeps the rejected
// records with their reasons; imported and skipped records only count.
type ImportReport struct {
	RunID      string         `json:"runId"`
	Source     string         `json:"source"`
	StartedAt  time.Time      `json:"startedAt"`
	Imported   int            `json:"imported"`
	Skipped    int            `json:"skipped"`
	Rejected   int            `json:"rejected"`
	Rejections []RecordResult `json:"rejections,omitempty"`
}
