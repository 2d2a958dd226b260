// Package nlp provides text analysis: a client for the nlp service's HTTP
// API and the Google Cloud Natural Language backend the service itself uses.
package nlp

import (
	"context"
	"sort"

	"github.com/iliyamo/aura-journal/internal/model"
)

// Analyzer produces a full analysis for one piece of text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (model.AnalysisPayload, error)
}

// maxTopics caps how many entities are reported as topics.
const maxTopics = 5

// SentimentLabel maps a document sentiment score/magnitude onto a coarse
// label. Score dominates; a near-zero score with high magnitude means strong
// feelings that cancel out, which reads as MIXED rather than NEUTRAL.
func SentimentLabel(score, magnitude float64) string {
	switch {
	case score > 0.25:
		return "POSITIVE"
	case score < -0.25:
		return "NEGATIVE"
	case magnitude > 1.5:
		return "MIXED"
	default:
		return "NEUTRAL"
	}
}

type salientEntity struct {
	Name     string
	Salience float64
}

// topSalient returns the names of the n most salient entities.
func topSalient(entities []salientEntity, n int) []string {
	sorted := make([]salientEntity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salience > sorted[j].Salience
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	topics := make([]string, 0, len(sorted))
	for _, e := range sorted {
		topics = append(topics, e.Name)
	}
	return topics
}
