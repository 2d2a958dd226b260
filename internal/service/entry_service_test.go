package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/aura-journal/internal/model"
	"github.com/iliyamo/aura-journal/internal/queue"
)

type fakeEntries struct {
	rows    []model.Entry
	failing bool
}

func (f *fakeEntries) Create(_ context.Context, userID, content string) (model.Entry, error) {
	if f.failing {
		return model.Entry{}, errors.New("insert failed")
	}
	e := model.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	f.rows = append(f.rows, e)
	return e, nil
}

func (f *fakeEntries) ListByUser(_ context.Context, userID string, limit int) ([]model.Entry, error) {
	var out []model.Entry
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

type fakeNLP struct {
	payload *model.AnalysisPayload
	err     error
}

func (f *fakeNLP) Analyze(_ context.Context, _ string) (*model.AnalysisPayload, error) {
	return f.payload, f.err
}

type fakeInsights struct {
	stored []string // entry ids
	err    error
}

func (f *fakeInsights) Store(_ context.Context, entryID, _ string, _ model.AnalysisPayload) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, entryID)
	return nil
}

func capturePublisher(events *[]queue.EntryCreatedEvent) EventPublisher {
	return func(_ context.Context, ev queue.EntryCreatedEvent) error {
		*events = append(*events, ev)
		return nil
	}
}

func TestEntryCreateWithAnalysis(t *testing.T) {
	entries := &fakeEntries{}
	nlp := &fakeNLP{payload: &model.AnalysisPayload{
		Sentiment: model.SentimentResult{Label: "POSITIVE", Score: 0.8},
		Topics:    []string{"hiking", "weather"},
	}}
	insights := &fakeInsights{}
	var events []queue.EntryCreatedEvent
	svc := NewEntryService(entries, nlp, insights, capturePublisher(&events))

	entry, analysis, err := svc.Create(context.Background(), "user-1", "Great hike today")
	require.NoError(t, err)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "Great hike today", entry.Content)

	require.NotNil(t, analysis)
	assert.Equal(t, "POSITIVE", analysis.Sentiment.Label)
	assert.Equal(t, []string{"hiking", "weather"}, analysis.Topics)
	assert.Equal(t, []string{entry.ID}, insights.stored)

	require.Len(t, events, 1)
	assert.Equal(t, entry.ID, events[0].EntryID)
	assert.True(t, events[0].HasAnalysis)
	assert.Equal(t, len("Great hike today"), events[0].ContentLen)
}

func TestEntryCreateAnalysisUnavailable(t *testing.T) {
	entries := &fakeEntries{}
	nlp := &fakeNLP{err: errors.New("agent down")}
	insights := &fakeInsights{}
	var events []queue.EntryCreatedEvent
	svc := NewEntryService(entries, nlp, insights, capturePublisher(&events))

	entry, analysis, err := svc.Create(context.Background(), "user-1", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Nil(t, analysis)
	assert.Empty(t, insights.stored)

	require.Len(t, events, 1)
	assert.False(t, events[0].HasAnalysis)
}

func TestEntryCreateInsightFailureIsNotFatal(t *testing.T) {
	entries := &fakeEntries{}
	nlp := &fakeNLP{payload: &model.AnalysisPayload{Sentiment: model.SentimentResult{Label: "NEUTRAL"}}}
	insights := &fakeInsights{err: errors.New("mongo down")}
	var events []queue.EntryCreatedEvent
	svc := NewEntryService(entries, nlp, insights, capturePublisher(&events))

	_, analysis, err := svc.Create(context.Background(), "user-1", "hello")
	require.NoError(t, err)
	// The caller still gets the analysis even if the insight write failed.
	assert.NotNil(t, analysis)
}

func TestEntryCreateStoreFailure(t *testing.T) {
	entries := &fakeEntries{failing: true}
	var events []queue.EntryCreatedEvent
	svc := NewEntryService(entries, &fakeNLP{}, &fakeInsights{}, capturePublisher(&events))

	_, _, err := svc.Create(context.Background(), "user-1", "hello")
	assert.Error(t, err)
	assert.Empty(t, events)
}

func TestEntryList(t *testing.T) {
	entries := &fakeEntries{}
	nlp := &fakeNLP{err: errors.New("agent down")}
	var events []queue.EntryCreatedEvent
	svc := NewEntryService(entries, nlp, &fakeInsights{}, capturePublisher(&events))
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, _, err := svc.Create(ctx, "user-1", text)
		require.NoError(t, err)
	}
	_, _, err := svc.Create(ctx, "user-2", "other")
	require.NoError(t, err)

	got, err := svc.List(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, "three", got[0].Content)
	assert.Equal(t, "two", got[1].Content)
}
