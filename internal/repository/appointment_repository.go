package repository

import (
	"gorm.io/gorm"

	"github.com/kashf-health/kashf/internal/models"
)

type AppointmentRepository interface {
	BaseRepository[models.Appointment]
}

type appointmentRepository struct {
	BaseRepository[models.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{BaseRepository: NewBaseRepository[models.Appointment](db)}
}
