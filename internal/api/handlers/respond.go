package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/api/types"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}

// writeAppError maps the error taxonomy to HTTP statuses. Internal details
// are logged, never leaked: the client sees only a generic message.
func writeAppError(w http.ResponseWriter, err error) {
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid:
		writeError(w, http.StatusBadRequest, clientMessage(err))
	case appErr.CodeNotFound:
		writeError(w, http.StatusNotFound, clientMessage(err))
	case appErr.CodeConflict:
		writeError(w, http.StatusConflict, clientMessage(err))
	case appErr.CodeUnauthorized:
		writeError(w, http.StatusUnauthorized, clientMessage(err))
	default:
		logger.L().Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error")
	}
}

func clientMessage(err error) string {
	if ae, ok := err.(*appErr.AppError); ok {
		return ae.Message
	}
	return err.Error()
}
