package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the presentation record owned by exactly one user. All fields
// other than UserID are optional; omitted fields stay at their zero value
// and an upsert replaces them wholesale.
type Profile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Name            string    `json:"name"`
	Bio             string    `gorm:"type:text" json:"bio"`
	Specialization  string    `gorm:"index" json:"specialization"`
	Location        string    `json:"location"`
	PricePerSession *float64  `json:"pricePerSession,omitempty"`
	AvatarURL       string    `gorm:"type:text" json:"avatarUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
