package database

import (
	"fmt"

	"github.com/hireview/hireview-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs migrations for the resume
// and interview aggregates.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables for both aggregates. Shared with tests, which
// run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Resume{},
		&models.ResumeBasics{},
		&models.ResumeLink{},
		&models.ResumeSkill{},
		&models.ResumeLanguage{},
		&models.ResumeCertification{},
		&models.ResumeEducation{},
		&models.ResumeExperience{},
		&models.ResumeExperienceHighlight{},
		&models.ResumeProject{},
		&models.ResumeProjectHighlight{},
		&models.Interview{},
		&models.InterviewQuestion{},
	)
}
