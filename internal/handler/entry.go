package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/aura-journal/internal/model"
	"github.com/iliyamo/aura-journal/internal/service"
)

// EntryHandler bundles dependencies for journal-entry endpoints.  The
// authenticated user comes from the JWT middleware, never from the body.
type EntryHandler struct {
	Entries *service.EntryService
}

func NewEntryHandler(s *service.EntryService) *EntryHandler {
	return &EntryHandler{Entries: s}
}

type createEntryReq struct {
	Content string `json:"content"`
}

// entryResp is the composite response: the persisted entry plus an explicit
// optional analysis field.  It is built once from the service result; nothing
// is bolted on afterwards.
type entryResp struct {
	EntryID   string                 `json:"entry_id"`
	UserID    string                 `json:"user_id"`
	Timestamp time.Time              `json:"timestamp"`
	Content   string                 `json:"content"`
	Analysis  *model.AnalysisPayload `json:"analysis"`
}

// Create: persist a journal entry for the authenticated user and attach the
// analysis when the nlp service delivered one.
func (h *EntryHandler) Create(c echo.Context) error {
	var req createEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "content is required", "field": "content"})
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	entry, analysis, err := h.Entries.Create(ctx, userID, req.Content)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create journal entry"})
	}
	return c.JSON(http.StatusCreated, entryResp{
		EntryID:   entry.ID,
		UserID:    entry.UserID,
		Timestamp: entry.CreatedAt,
		Content:   entry.Content,
		Analysis:  analysis,
	})
}

// List: return the authenticated user's recent entries (without analysis;
// insights live in the document store).
func (h *EntryHandler) List(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	entries, err := h.Entries.List(ctx, userID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list journal entries"})
	}
	out := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResp{
			EntryID:   e.ID,
			UserID:    e.UserID,
			Timestamp: e.CreatedAt,
			Content:   e.Content,
		})
	}
	return c.JSON(http.StatusOK, out)
}
