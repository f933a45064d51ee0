package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a booking request from a patient to a professional.
// Creation is the only modeled state; there are no transitions.
type Appointment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patientId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professionalId"`
	ScheduledAt    time.Time `gorm:"not null" json:"scheduledAt"`
	CreatedAt      time.Time `json:"createdAt"`

	// associations enforce that both parties exist; never serialized
	Patient      *User `gorm:"foreignKey:PatientID" json:"-"`
	Professional *User `gorm:"foreignKey:ProfessionalID" json:"-"`
}

func (a *Appointment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
