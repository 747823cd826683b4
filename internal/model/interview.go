package model

import "time"

// Interview status constants. The transition is one-way: active -> completed.
const (
	InterviewActive    = "active"
	InterviewCompleted = "completed"
)

// Interview type constants
const (
	InterviewTypeText = "text"
)

type Interview struct {
	ID              string              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          int64               `gorm:"not null;index:idx_interviews_user_created,priority:1" json:"userId"`
	Type            string              `gorm:"not null;size:20;default:'text'" json:"type"`
	Category        string              `gorm:"not null;size:30" json:"category"`
	Status          string              `gorm:"not null;size:20;default:'active'" json:"status"`
	CurrentQuestion int                 `gorm:"not null;default:0" json:"currentQuestion"`
	TotalQuestions  int                 `gorm:"not null;default:0" json:"totalQuestions"`
	Score           *float64            `json:"score,omitempty"`
	Questions       []InterviewQuestion `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Answers         []InterviewAnswer   `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt       time.Time           `gorm:"index:idx_interviews_user_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func (Interview) TableName() string {
	return "interviews"
}

// Completed reports whether every question of the interview has been answered.
func (i *Interview) Completed() bool {
	return i.Status == InterviewCompleted
}

type InterviewQuestion struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID  string    `gorm:"type:uuid;not null;index" json:"interviewId"`
	QuestionText string    `gorm:"type:text;not null" json:"questionText"`
	Category     string    `gorm:"not null;size:30" json:"category"`
	Order        int       `gorm:"column:order;not null" json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}

type InterviewAnswer struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID string    `gorm:"type:uuid;not null;index" json:"interviewId"`
	QuestionID  string    `gorm:"type:uuid;not null" json:"questionId"`
	AnswerText  string    `gorm:"type:text;not null" json:"answerText"`
	Score       *int      `json:"score"`
	Feedback    string    `gorm:"type:text" json:"feedback"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (InterviewAnswer) TableName() string {
	return "interview_answers"
}
