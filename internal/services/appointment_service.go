package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/repository"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

// ErrDemoAccount rejects bookings against seeded test accounts. It is a
// soft rejection: the handler renders it as a distinguished payload so
// clients can explain it rather than show a failure banner.
var ErrDemoAccount = errors.New("cannot book a dummy/test account")

type AppointmentService interface {
	Book(ctx context.Context, patientID, professionalID uuid.UUID, scheduledAt time.Time) (*models.Appointment, error)
}

type appointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	demoDomain   string
}

func NewAppointmentService(appointments repository.AppointmentRepository, users repository.UserRepository, demoDomain string) AppointmentService {
	return &appointmentService{appointments: appointments, users: users, demoDomain: demoDomain}
}

var _ AppointmentService = (*appointmentService)(nil)

// Book validates in order: the professional must exist, and must not be a
// seeded demo account (detected by email domain suffix). There is no
// conflict detection between bookings; creation is fire-and-forget.
func (s *appointmentService) Book(ctx context.Context, patientID, professionalID uuid.UUID, scheduledAt time.Time) (*models.Appointment, error) {
	var prof models.User
	if err := s.users.GetByID(ctx, professionalID, &prof); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "professional not found")
		}
		return nil, err
	}

	if s.demoDomain != "" && strings.HasSuffix(prof.Email, s.demoDomain) {
		return nil, ErrDemoAccount
	}

	a := &models.Appointment{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		ScheduledAt:    scheduledAt,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.L().Info("appointment booked",
		zap.String("patient", patientID.String()),
		zap.String("professional", professionalID.String()),
		zap.Time("scheduled_at", scheduledAt),
	)
	return a, nil
}
