package nlp

import (
	"context"
	"fmt"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"

	"github.com/iliyamo/aura-journal/internal/model"
)

// GCPAnalyzer implements Analyzer on the Google Cloud Natural Language API.
// Credentials come from the usual GOOGLE_APPLICATION_CREDENTIALS mechanism.
type GCPAnalyzer struct {
	client *language.Client
}

func NewGCPAnalyzer(ctx context.Context) (*GCPAnalyzer, error) {
	c, err := language.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create language client: %w", err)
	}
	return &GCPAnalyzer{client: c}, nil
}

// Close releases the underlying gRPC connection.
func (a *GCPAnalyzer) Close() error { return a.client.Close() }

// Analyze runs sentiment and entity analysis and reduces both to the
// AnalysisPayload shape: a coarse sentiment label plus the most salient
// entities as topics.
func (a *GCPAnalyzer) Analyze(ctx context.Context, text string) (model.AnalysisPayload, error) {
	doc := &languagepb.Document{
		Type:   languagepb.Document_PLAIN_TEXT,
		Source: &languagepb.Document_Content{Content: text},
	}

	sentResp, err := a.client.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: doc,
	})
	if err != nil {
		return model.AnalysisPayload{}, fmt.Errorf("analyze sentiment: %w", err)
	}
	sentiment := sentResp.GetDocumentSentiment()
	score := float64(sentiment.GetScore())
	magnitude := float64(sentiment.GetMagnitude())

	entResp, err := a.client.AnalyzeEntities(ctx, &languagepb.AnalyzeEntitiesRequest{
		Document: doc,
	})
	if err != nil {
		return model.AnalysisPayload{}, fmt.Errorf("analyze entities: %w", err)
	}
	entities := make([]salientEntity, 0, len(entResp.GetEntities()))
	for _, e := range entResp.GetEntities() {
		entities = append(entities, salientEntity{
			Name:     e.GetName(),
			Salience: float64(e.GetSalience()),
		})
	}

	return model.AnalysisPayload{
		Sentiment: model.SentimentResult{
			Label: SentimentLabel(score, magnitude),
			Score: score,
		},
		Topics: topSalient(entities, maxTopics),
	}, nil
}
