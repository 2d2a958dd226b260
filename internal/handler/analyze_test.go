package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/aura-journal/internal/model"
)

type stubAnalyzer struct {
	payload model.AnalysisPayload
	err     error
	calls   int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) (model.AnalysisPayload, error) {
	s.calls++
	return s.payload, s.err
}

func newAnalyzeEnv(a *stubAnalyzer) *echo.Echo {
	e := echo.New()
	// Nil cache: the nil-safe AnalysisCache methods make every lookup a miss.
	h := NewAnalyzeHandler(a, nil)
	e.POST("/analyze", h.Analyze)
	return e
}

func TestAnalyze(t *testing.T) {
	a := &stubAnalyzer{payload: model.AnalysisPayload{
		Sentiment: model.SentimentResult{Label: "NEGATIVE", Score: -0.6},
		Topics:    []string{"traffic", "rain"},
	}}
	e := newAnalyzeEnv(a)

	rec := doJSON(e, http.MethodPost, "/analyze", `{"text":"awful commute in the rain"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	sentiment := body["sentiment"].(map[string]any)
	assert.Equal(t, "NEGATIVE", sentiment["label"])
	assert.InDelta(t, -0.6, sentiment["score"].(float64), 1e-9)
	assert.Equal(t, 1, a.calls)
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := &stubAnalyzer{}
	e := newAnalyzeEnv(a)

	rec := doJSON(e, http.MethodPost, "/analyze", `{"text":"  "}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "text", decode(t, rec)["field"])
	assert.Zero(t, a.calls)
}

func TestAnalyzeProviderFailure(t *testing.T) {
	a := &stubAnalyzer{err: errors.New("quota exhausted")}
	e := newAnalyzeEnv(a)

	rec := doJSON(e, http.MethodPost, "/analyze", `{"text":"anything"}`, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error during text analysis", decode(t, rec)["error"])
}
