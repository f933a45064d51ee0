package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kashf-health/kashf/internal/models"
	appErr "github.com/kashf-health/kashf/pkg/errors"
)

// SearchFilters are the directory search parameters after boundary
// normalization. Role is always set; the rest constrain only when non-empty.
type SearchFilters struct {
	Query          string
	Specialization string
	Location       string
	Role           models.Role
	Offset         int
	Limit          int
}

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	Search(ctx context.Context, f SearchFilters) ([]models.User, int64, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return nil
}

// Search filters users conjunctively: role AND specialization AND location
// AND the free-text group (profile name OR bio OR user email). Substring
// matches are case-insensitive. The LEFT JOIN keeps profile-less users
// reachable through the email leg of the free-text group.
func (r *userRepository) Search(ctx context.Context, f SearchFilters) ([]models.User, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.User{}).
			Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
			Where("users.role = ?", f.Role)
		if f.Specialization != "" {
			q = q.Where(`LOWER(profiles.specialization) LIKE ? ESCAPE '\'`, contains(f.Specialization))
		}
		if f.Location != "" {
			q = q.Where(`LOWER(profiles.location) LIKE ? ESCAPE '\'`, contains(f.Location))
		}
		if f.Query != "" {
			like := contains(f.Query)
			q = q.Where(`(LOWER(profiles.name) LIKE ? ESCAPE '\' OR LOWER(profiles.bio) LIKE ? ESCAPE '\' OR LOWER(users.email) LIKE ? ESCAPE '\')`, like, like, like)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count users failed")
	}

	var users []models.User
	err := base().
		Select("users.*").
		Preload("Profile").
		Order("users.created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "search users failed")
	}
	return users, total, nil
}

// likeEscaper neutralizes LIKE wildcards so filter input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
