package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kashf-health/kashf/internal/models"
	appErr "github.com/kashf-health/kashf/pkg/errors"
)

type ProfileRepository interface {
	BaseRepository[models.Profile]
	// Upsert creates or replaces the profile keyed on user_id and loads the
	// resulting row back into p.
	Upsert(ctx context.Context, p *models.Profile) error
	GetWithUser(ctx context.Context, id uuid.UUID, dest *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID, dest *models.Profile) error
}

type profileRepository struct {
	BaseRepository[models.Profile]
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{BaseRepository: NewBaseRepository[models.Profile](db), db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "bio", "specialization", "location",
			"price_per_session", "avatar_url", "updated_at",
		}),
	}).Create(p).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "upsert profile failed")
	}
	// On the update path the insert ID is not the stored row's; re-read so
	// callers see the canonical record. The destination must be zero-valued:
	// gorm folds a populated primary key on p into the WHERE clause, which
	// would miss the existing row.
	var stored models.Profile
	if err := r.GetByUserID(ctx, p.UserID, &stored); err != nil {
		return err
	}
	*p = stored
	return nil
}

func (r *profileRepository) GetWithUser(ctx context.Context, id uuid.UUID, dest *models.Profile) error {
	if err := r.db.WithContext(ctx).Preload("User").First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "profile not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get profile failed")
	}
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID, dest *models.Profile) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "profile not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get profile by user failed")
	}
	return nil
}
