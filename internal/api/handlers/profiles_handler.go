package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/api/middleware"
	"github.com/kashf-health/kashf/internal/api/types"
	"github.com/kashf-health/kashf/internal/services"
	"github.com/kashf-health/kashf/pkg/logger"
)

type ProfilesHandler struct {
	directory services.DirectoryService
}

func NewProfilesHandler(directory services.DirectoryService) *ProfilesHandler {
	return &ProfilesHandler{directory: directory}
}

// Upsert creates or replaces the caller-named user's profile. Omitted fields
// reset to absent; repeated identical calls are idempotent.
func (h *ProfilesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req types.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if sub := middleware.GetUserID(r.Context()); sub != "" && sub != req.UserID {
		logger.L().Warn("profile upsert target differs from token subject",
			zap.String("subject", sub), zap.String("user_id", req.UserID))
	}

	p, err := h.directory.UpsertProfile(r.Context(), &services.UpsertProfileInput{
		UserID:          userID,
		Name:            req.Name,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		Location:        req.Location,
		PricePerSession: req.PricePerSession,
		AvatarURL:       req.AvatarURL,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Get returns a profile by profile id with its joined user.
func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	p, err := h.directory.GetProfile(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Search lists professionals (or another role) with free-text and field
// filters plus pagination.
func (h *ProfilesHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	res, err := h.directory.Search(r.Context(), services.SearchParams{
		Query:          q.Get("q"),
		Specialization: q.Get("specialization"),
		Location:       q.Get("location"),
		Role:           q.Get("role"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
