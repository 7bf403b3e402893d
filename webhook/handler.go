package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"maya-go/data"
	"maya-go/internal/logger"
)

// EventHandler receives events that passed signature validation and parsing.
// The raw payload map is passed alongside for consumers that need fields the
// typed event does not model.
type EventHandler func(ctx context.Context, event *data.WebhookEvent, raw map[string]any) error

// Handler is a ready-made http.Handler for the webhook endpoint. It verifies
// the signature, parses the payload, and hands the event to OnEvent.
type Handler struct {
	Validator *Validator
	OnEvent   EventHandler
}

func NewHandler(validator *Validator, onEvent EventHandler) *Handler {
	return &Handler{Validator: validator, OnEvent: onEvent}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond(w, http.StatusBadRequest, false, "failed to read webhook body")
		return
	}
	defer r.Body.Close()

	if len(body) == 0 {
		respond(w, http.StatusBadRequest, false, "empty webhook payload")
		return
	}

	if err := h.Validator.VerifyFromHeaders(body, r.Header); err != nil {
		logger.L().Warn("webhook signature rejected", zap.Error(err))
		respond(w, http.StatusBadRequest, false, err.Error())
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		respond(w, http.StatusBadRequest, false, "invalid JSON payload")
		return
	}

	event, err := data.ParseWebhookEvent(raw)
	if err != nil {
		logger.L().Warn("webhook payload rejected", zap.Error(err))
		respond(w, http.StatusBadRequest, false, err.Error())
		return
	}

	if h.OnEvent != nil {
		if err := h.OnEvent(r.Context(), event, raw); err != nil {
			logger.L().Error("webhook event handler failed",
				zap.String("event_id", event.ID),
				zap.String("status", event.Status),
				zap.Error(err),
			)
			respond(w, http.StatusInternalServerError, false, "failed to process webhook")
			return
		}
	}

	respond(w, http.StatusOK, true, "webhook processed successfully")
}

func respond(w http.ResponseWriter, status int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
	})
}
