package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one immutable directed communication between two users.
// Messages are never updated or deleted.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FromID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:1" json:"fromId"`
	ToID      uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:2" json:"toId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// associations enforce that both parties exist; never serialized
	From *User `gorm:"foreignKey:FromID" json:"-"`
	To   *User `gorm:"foreignKey:ToID" json:"-"`
}

func (m *Message) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
