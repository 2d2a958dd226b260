package service

import (
	"context"
	"fmt"
	"log"

	"github.com/iliyamo/aura-journal/internal/model"
	"github.com/iliyamo/aura-journal/internal/queue"
)

// EntryStore is the journal-entry persistence consumed by EntryService.
// Implemented by repository.EntryRepo.
type EntryStore interface {
	Create(ctx context.Context, userID, content string) (model.Entry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Entry, error)
}

// NLPClient requests analysis for entry content.  A nil payload with a nil
// error is never returned; failures come back as errors and the entry is
// created without analysis.
type NLPClient interface {
	Analyze(ctx context.Context, text string) (*model.AnalysisPayload, error)
}

// InsightStore persists analysis results alongside (not inside) the entry.
// Implemented by repository.InsightRepo.
type InsightStore interface {
	Store(ctx context.Context, entryID, userID string, a model.AnalysisPayload) error
}

// EventPublisher announces persisted entries on the broker.
type EventPublisher func(ctx context.Context, ev queue.EntryCreatedEvent) error

// EntryService creates journal entries and fans out to the analysis
// pipeline: NLP call, insight document, entry.created event.  Only the entry
// insert itself is load-bearing; every downstream step degrades to a log
// line.
type EntryService struct {
	entries  EntryStore
	nlp      NLPClient
	insights InsightStore
	publish  EventPublisher
}

func NewEntryService(entries EntryStore, nlp NLPClient, insights InsightStore, publish EventPublisher) *EntryService {
	if publish == nil {
		publish = queue.PublishEntryCreated
	}
	return &EntryService{entries: entries, nlp: nlp, insights: insights, publish: publish}
}

// Create persists the entry, then tries to analyze it.  The returned payload
// is nil when analysis was unavailable; the caller's response carries an
// explicit optional analysis field either way.
func (s *EntryService) Create(ctx context.Context, userID, content string) (model.Entry, *model.AnalysisPayload, error) {
	entry, err := s.entries.Create(ctx, userID, content)
	if err != nil {
		return model.Entry{}, nil, fmt.Errorf("create entry: %w", err)
	}

	analysis, err := s.nlp.Analyze(ctx, content)
	if err != nil {
		log.Printf("entries: analysis unavailable for %s: %v", entry.ID, err)
		analysis = nil
	}

	if analysis != nil {
		if err := s.insights.Store(ctx, entry.ID, entry.UserID, *analysis); err != nil {
			log.Printf("entries: store insight for %s failed: %v", entry.ID, err)
		}
	}

	ev := queue.EntryCreatedEvent{
		EntryID:     entry.ID,
		UserID:      entry.UserID,
		CreatedAt:   entry.CreatedAt,
		ContentLen:  len(content),
		HasAnalysis: analysis != nil,
	}
	if err := s.publish(ctx, ev); err != nil {
		log.Printf("entries: publish entry.created for %s failed: %v", entry.ID, err)
	}

	return entry, analysis, nil
}

// List returns a user's recent entries.
func (s *EntryService) List(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	return s.entries.ListByUser(ctx, userID, limit)
}
