package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/aura-journal/internal/model"
)

func TestClientAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "great day", req.Text)

		_ = json.NewEncoder(w).Encode(model.AnalysisPayload{
			Sentiment: model.SentimentResult{Label: "POSITIVE", Score: 0.7},
			Topics:    []string{"day"},
		})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Analyze(context.Background(), "great day")
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", got.Sentiment.Label)
	assert.InDelta(t, 0.7, got.Sentiment.Score, 1e-9)
	assert.Equal(t, []string{"day"}, got.Topics)
}

func TestClientAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analyze(context.Background(), "text")
	assert.Error(t, err)
}

func TestClientAnalyzeUnreachable(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1/analyze").Analyze(context.Background(), "text")
	assert.Error(t, err)
}
