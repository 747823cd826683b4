package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Resume struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       int64          `gorm:"not null;index" json:"userId"`
	Filename     string         `gorm:"not null;size:255" json:"-"`
	OriginalName string         `gorm:"not null;size:255" json:"filename"`
	Content      string         `gorm:"type:text" json:"-"`
	ATSScore     float64        `gorm:"not null" json:"atsScore"`
	Keywords     pq.StringArray `gorm:"type:text[]" json:"keywords"`
	Feedback     string         `gorm:"type:text" json:"feedback"`
	Analysis     datatypes.JSON `json:"analysis,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (Resume) TableName() string {
	return "resumes"
}
