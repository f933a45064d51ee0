package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/repository"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

type MessagingService interface {
	Send(ctx context.Context, fromID, toID uuid.UUID, content string) (*models.Message, error)
	Conversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error)
}

type messagingService struct {
	messages repository.MessageRepository
}

func NewMessagingService(messages repository.MessageRepository) MessagingService {
	return &messagingService{messages: messages}
}

var _ MessagingService = (*messagingService)(nil)

func (s *messagingService) Send(ctx context.Context, fromID, toID uuid.UUID, content string) (*models.Message, error) {
	if fromID == uuid.Nil || toID == uuid.Nil || strings.TrimSpace(content) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "missing fields")
	}

	m := &models.Message{FromID: fromID, ToID: toID, Content: content}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	logger.L().Info("message sent", zap.String("from", fromID.String()), zap.String("to", toID.String()))
	return m, nil
}

// Conversation is symmetric in its arguments and sorted oldest first. The
// result is unbounded; there is no pagination at current scale.
func (s *messagingService) Conversation(ctx context.Context, a, b uuid.UUID) ([]models.Message, error) {
	msgs, err := s.messages.Conversation(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}
