package model

import "time"

// QuestionBankEntry is one row of the static fallback pool used when AI
// question generation fails.
type QuestionBankEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Category  string    `gorm:"not null;size:30;index" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func (QuestionBankEntry) TableName() string {
	return "question_bank"
}
