package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/repository"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UpsertProfileInput carries the partial-update fields of a profile upsert.
// Nil pointers mean "absent": the stored column is reset to its zero value,
// matching the replace-wholesale upsert semantics of the API.
type UpsertProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	Bio             *string
	Specialization  *string
	Location        *string
	PricePerSession *float64
	AvatarURL       *string
}

// SearchParams are raw directory search arguments before clamping.
type SearchParams struct {
	Query          string
	Specialization string
	Location       string
	Role           string
	Page           int
	Limit          int
}

// SearchResult is one page of directory matches with the pre-pagination
// total.
type SearchResult struct {
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Results []models.User `json:"results"`
}

type DirectoryService interface {
	UpsertProfile(ctx context.Context, in *UpsertProfileInput) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Search(ctx context.Context, p SearchParams) (*SearchResult, error)
}

type directoryService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewDirectoryService(profiles repository.ProfileRepository, users repository.UserRepository) DirectoryService {
	return &directoryService{profiles: profiles, users: users}
}

var _ DirectoryService = (*directoryService)(nil)

func (s *directoryService) UpsertProfile(ctx context.Context, in *UpsertProfileInput) (*models.Profile, error) {
	if in.UserID == uuid.Nil {
		return nil, appErr.New(appErr.CodeInvalid, "userId is required")
	}
	if in.PricePerSession != nil && *in.PricePerSession < 0 {
		return nil, appErr.New(appErr.CodeInvalid, "pricePerSession must be non-negative")
	}

	p := &models.Profile{
		UserID:          in.UserID,
		Name:            deref(in.Name),
		Bio:             deref(in.Bio),
		Specialization:  deref(in.Specialization),
		Location:        deref(in.Location),
		PricePerSession: in.PricePerSession,
		AvatarURL:       deref(in.AvatarURL),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("profile upserted", zap.String("user_id", in.UserID.String()))
	return p, nil
}

func (s *directoryService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := s.profiles.GetWithUser(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Search clamps pagination (page min 1, limit max 100) and defaults the role
// to PROFESSIONAL before delegating to the store query.
func (s *directoryService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	role := models.NormalizeRole(p.Role)
	if role == "" {
		role = models.RoleProfessional
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	users, total, err := s.users.Search(ctx, repository.SearchFilters{
		Query:          p.Query,
		Specialization: p.Specialization,
		Location:       p.Location,
		Role:           role,
		Offset:         (page - 1) * limit,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return &SearchResult{Total: total, Page: page, Limit: limit, Results: users}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
