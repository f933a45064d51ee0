package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kashf-health/kashf/internal/models"
	appErr "github.com/kashf-health/kashf/pkg/errors"
)

type MessageRepository interface {
	BaseRepository[models.Message]
	// Conversation returns every message exchanged between a and b in either
	// direction, oldest first.
	Conversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error)
}

type messageRepository struct {
	BaseRepository[models.Message]
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{BaseRepository: NewBaseRepository[models.Message](db), db: db}
}

func (r *messageRepository) Conversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error) {
	var out []models.Message
	err := r.db.WithContext(ctx).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "load conversation failed")
	}
	return out, nil
}
