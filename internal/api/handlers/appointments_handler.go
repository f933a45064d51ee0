package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/api/middleware"
	"github.com/kashf-health/kashf/internal/api/types"
	"github.com/kashf-health/kashf/internal/services"
	"github.com/kashf-health/kashf/pkg/logger"
)

type AppointmentsHandler struct {
	appointments services.AppointmentService
}

func NewAppointmentsHandler(appointments services.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

func (h *AppointmentsHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req types.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PatientID == "" || req.ProfessionalID == "" || req.ScheduledAt == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid patientId")
		return
	}
	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid professionalId")
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scheduledAt")
		return
	}

	if sub := middleware.GetUserID(r.Context()); sub != "" && sub != req.PatientID {
		logger.L().Warn("booking patient differs from token subject",
			zap.String("subject", sub),
			zap.String("patient_id", req.PatientID),
			zap.String("subject_role", middleware.GetRole(r.Context())))
	}

	a, err := h.appointments.Book(r.Context(), patientID, professionalID, scheduledAt)
	if errors.Is(err, services.ErrDemoAccount) {
		// Soft rejection, not a generic error: the flag lets clients explain
		// why this specific account cannot be booked.
		writeJSON(w, http.StatusBadRequest, types.DummyRejection{
			Dummy:   true,
			Message: "Cannot book a dummy/test account",
		})
		return
	}
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
