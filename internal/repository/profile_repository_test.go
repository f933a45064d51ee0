package repository

import (
	"context"
	"fmt"
	"testing"

	driver "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kashf-health/kashf/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Message{},
		&models.Appointment{},
	))
	return db
}

func TestProfileUpsertUpdatesExistingRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)

	u := &models.User{Email: "dr@example.com", PasswordHash: "x", Role: models.RoleProfessional}
	require.NoError(t, users.Create(ctx, u))

	first := &models.Profile{UserID: u.ID, Name: "Dr. Ada Osei"}
	require.NoError(t, profiles.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	// second upsert hits the conflict path and must come back with the
	// stored row, not chase the id stamped on the failed insert attempt
	second := &models.Profile{UserID: u.ID, Name: "Dr. Ada Osei-Bonsu"}
	require.NoError(t, profiles.Upsert(ctx, second))
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Dr. Ada Osei-Bonsu", second.Name)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestMessageCreateRequiresExistingUsers(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	messages := NewMessageRepository(db)
	err := messages.Create(ctx, &models.Message{
		FromID:  uuid.New(),
		ToID:    uuid.New(),
		Content: "hello?",
	})
	require.Error(t, err)
}
