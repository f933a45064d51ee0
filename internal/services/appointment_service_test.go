package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/repository"
	appErr "github.com/kashf-health/kashf/pkg/errors"
	"github.com/kashf-health/kashf/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, obj *models.User) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id any, dest *models.User) error {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok && u != nil {
		*dest = *u
	}
	return args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, obj *models.User) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok && u != nil {
		*dest = *u
	}
	return args.Error(1)
}

func (m *mockUserRepo) Search(ctx context.Context, f repository.SearchFilters) ([]models.User, int64, error) {
	args := m.Called(ctx, f)
	var users []models.User
	if v := args.Get(0); v != nil {
		users = v.([]models.User)
	}
	return users, int64(args.Int(1)), args.Error(2)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, obj *models.Appointment) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id any, dest *models.Appointment) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, obj *models.Appointment) error {
	return m.Called(ctx, obj).Error(0)
}

func professional(email string) *models.User {
	return &models.User{ID: uuid.New(), Email: email, Role: models.RoleProfessional}
}

func TestBookRejectsDemoDomain(t *testing.T) {
	users := new(mockUserRepo)
	appts := new(mockAppointmentRepo)
	svc := NewAppointmentService(appts, users, "@kashf.com")

	prof := professional("prof1@kashf.com")
	users.On("GetByID", mock.Anything, prof.ID).Return(prof, nil)

	_, err := svc.Book(context.Background(), uuid.New(), prof.ID, time.Now().Add(time.Hour))
	require.ErrorIs(t, err, ErrDemoAccount)
	appts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookAllowsOtherDomains(t *testing.T) {
	users := new(mockUserRepo)
	appts := new(mockAppointmentRepo)
	svc := NewAppointmentService(appts, users, "@kashf.com")

	prof := professional("dr@clinic.example.com")
	users.On("GetByID", mock.Anything, prof.ID).Return(prof, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)

	when := time.Now().Add(time.Hour)
	a, err := svc.Book(context.Background(), uuid.New(), prof.ID, when)
	require.NoError(t, err)
	require.Equal(t, prof.ID, a.ProfessionalID)
	require.True(t, a.ScheduledAt.Equal(when))
	appts.AssertExpectations(t)
}

func TestBookSuffixMatchIsExact(t *testing.T) {
	users := new(mockUserRepo)
	appts := new(mockAppointmentRepo)
	svc := NewAppointmentService(appts, users, "@kashf.com")

	// domain appears mid-address, not as suffix
	prof := professional("prof@kashf.com.real-clinic.org")
	users.On("GetByID", mock.Anything, prof.ID).Return(prof, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Book(context.Background(), uuid.New(), prof.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
}

func TestBookUnknownProfessional(t *testing.T) {
	users := new(mockUserRepo)
	appts := new(mockAppointmentRepo)
	svc := NewAppointmentService(appts, users, "@kashf.com")

	id := uuid.New()
	users.On("GetByID", mock.Anything, id).Return(nil, appErr.New(appErr.CodeNotFound, "user not found"))

	_, err := svc.Book(context.Background(), uuid.New(), id, time.Now().Add(time.Hour))
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
