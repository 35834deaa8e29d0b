package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"channelscope-backend/internal/models"
	"channelscope-backend/internal/services"
)

// analyzerService is the surface of the analysis pipeline the HTTP layer
// depends on.
type analyzerService interface {
	AnalyzeChannel(ctx context.Context, input string) (string, error)
	FullAnalysis(ctx context.Context, channelID string) (*models.ChannelAnalysis, error)
	MoreIdeas(ctx context.Context, channelID string) ([]models.ContentIdea, error)
}

type ChannelHandler struct {
	analyzer analyzerService
}

func NewChannelHandler(analyzer analyzerService) *ChannelHandler {
	return &ChannelHandler{analyzer: analyzer}
}

// Analyze handles POST /api/v1/channels/analyze.
func (h *ChannelHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResp(w, r, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if strings.TrimSpace(req.ChannelName) == "" {
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation error", map[string]string{
			"channel_name": "channel_name is required",
		})
		return
	}

	channelID, err := h.analyzer.AnalyzeChannel(r.Context(), req.ChannelName)
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "Channel not found. Please check the channel name and try again.")
			return
		}
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"channel_id": channelID,
	})
}

// GetAnalysis handles GET /api/v1/channels/{channelID}/analysis.
func (h *ChannelHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	analysis, err := h.analyzer.FullAnalysis(r.Context(), channelID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// MoreIdeas handles POST /api/v1/channels/{channelID}/ideas.
func (h *ChannelHandler) MoreIdeas(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	ideas, err := h.analyzer.MoreIdeas(r.Context(), channelID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"content_ideas": ideas,
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func errorResp(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	errorRespWithFields(w, r, status, code, message, nil)
}

func errorRespWithFields(w http.ResponseWriter, r *http.Request, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	})
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", notFound.Message)
	case errors.As(err, &validation):
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation error", validation.Fields)
	default:
		log.Printf("Internal error: %v", err)
		errorResp(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred. Please try again later.")
	}
}
