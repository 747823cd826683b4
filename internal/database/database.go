package database

import (
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/config"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Interview{},
		&model.InterviewQuestion{},
		&model.InterviewAnswer{},
		&model.QuestionBankEntry{},
		&model.Resume{},
	)
	if err != nil {
		return err
	}

	// Question order is unique within an interview; presentation order is
	// insertion order.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_interview_questions_interview_order ON interview_questions(interview_id, \"order\")")

	// Local accounts are unique by email, OAuth accounts by (provider, provider_id)
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_local_email ON users(email) WHERE provider = 'local'")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_provider_provider_id ON users(provider, provider_id) WHERE provider <> 'local'")

	return nil
}
