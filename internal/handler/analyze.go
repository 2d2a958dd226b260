package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aura-journal/internal/cache"
	"github.com/iliyamo/aura-journal/internal/nlp"
)

// AnalyzeHandler exposes the nlp service's single operation.  Cache may be
// nil; analysis then always goes to the provider.
type AnalyzeHandler struct {
	Analyzer nlp.Analyzer
	Cache    *cache.AnalysisCache
}

func NewAnalyzeHandler(a nlp.Analyzer, c *cache.AnalysisCache) *AnalyzeHandler {
	return &AnalyzeHandler{Analyzer: a, Cache: c}
}

type analyzeTextReq struct {
	Text string `json:"text"`
}

// Analyze: return sentiment and topics for the posted text.
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req analyzeTextReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "text is required", "field": "text"})
	}

	ctx := c.Request().Context()
	if payload, ok := h.Cache.Get(ctx, req.Text); ok {
		return c.JSON(http.StatusOK, payload)
	}

	payload, err := h.Analyzer.Analyze(ctx, req.Text)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error during text analysis"})
	}
	h.Cache.Set(ctx, req.Text, payload)
	return c.JSON(http.StatusOK, payload)
}
