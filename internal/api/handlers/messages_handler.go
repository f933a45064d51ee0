package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/api/middleware"
	"github.com/kashf-health/kashf/internal/api/types"
	"github.com/kashf-health/kashf/internal/services"
	"github.com/kashf-health/kashf/pkg/logger"
)

type MessagesHandler struct {
	messaging services.MessagingService
}

func NewMessagesHandler(messaging services.MessagingService) *MessagesHandler {
	return &MessagesHandler{messaging: messaging}
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.FromID == "" || req.ToID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	fromID, err := uuid.Parse(req.FromID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fromId")
		return
	}
	toID, err := uuid.Parse(req.ToID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid toId")
		return
	}

	// The sender id is trusted as supplied for client compatibility; a
	// mismatch with the token subject is logged, not rejected.
	if sub := middleware.GetUserID(r.Context()); sub != "" && sub != req.FromID {
		logger.L().Warn("message sender differs from token subject",
			zap.String("subject", sub), zap.String("from_id", req.FromID))
	}

	m, err := h.messaging.Send(r.Context(), fromID, toID, req.Content)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Conversation returns all messages between {a} and {b}, either direction,
// oldest first.
func (h *MessagesHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	a, errA := uuid.Parse(chi.URLParam(r, "a"))
	b, errB := uuid.Parse(chi.URLParam(r, "b"))
	if errA != nil || errB != nil {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	msgs, err := h.messaging.Conversation(r.Context(), a, b)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
