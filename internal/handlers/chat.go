package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"agentic-backend/internal/models"
)

type supportAgent interface {
	Run(ctx context.Context, userText string) (*models.ChatResponse, error)
}

type ChatHandler struct {
	agent supportAgent
}

func NewChatHandler(agent supportAgent) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// Chat maps one inbound message to one pipeline run. An empty message is
// accepted and passed through unchanged. Pipeline failures surface as a
// server error carrying the provider detail.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, err := h.agent.Run(r.Context(), req.Message)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
