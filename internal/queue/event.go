// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for them.
package queue

import "time"

// EntryCreatedEvent is published when a journal entry has been persisted.
// It carries enough for downstream consumers to log, notify, or backfill
// insights without re-reading the entry row.
type EntryCreatedEvent struct {
	EntryID     string    `json:"entry_id"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	ContentLen  int       `json:"content_len"`
	HasAnalysis bool      `json:"has_analysis"`
}
