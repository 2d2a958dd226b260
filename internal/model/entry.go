package model

import "time"

// Entry mirrors a row in the `entries` table.
type Entry struct {
    ID        string    // entries.entry_id
    UserID    string    // entries.user_id
    Content   string    // entries.content
    CreatedAt time.Time // entries.created_at
}

// SentimentResult is the sentiment portion of a text analysis.
// Label is one of POSITIVE, NEGATIVE, NEUTRAL or MIXED.
type SentimentResult struct {
    Label string  `json:"label"`
    Score float64 `json:"score"`
}

// AnalysisPayload is the full result of analyzing one piece of text.  It is
// produced by the nlp service, persisted as an insight document, and embedded
// in entry responses.  Constructed once and never mutated afterwards.
type AnalysisPayload struct {
    Sentiment SentimentResult `json:"sentiment"`
    Topics    []string        `json:"topics"`
}
