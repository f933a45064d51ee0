package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kashf-health/kashf/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Message{},
		&models.Appointment{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addIDDefaults,
		addConversationIndex,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enableUUIDExtension ensures UUID generation is available
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addIDDefaults keeps server-side UUID generation for rows inserted outside
// the application (psql, ETL), which bypass the BeforeCreate hooks.
func addIDDefaults(db *gorm.DB) error {
	for _, table := range []string{"users", "profiles", "messages", "appointments"} {
		err := db.Exec(fmt.Sprintf(
			`ALTER TABLE %s ALTER COLUMN id SET DEFAULT gen_random_uuid()`, table,
		)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// addConversationIndex covers the two-sided conversation lookup, which
// filters on (from_id, to_id) in both orders and sorts by created_at.
func addConversationIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_messages_pair_time
		ON messages(from_id, to_id, created_at)
	`).Error
}
