package models

import (
	"fmt"
	"time"
)

type TestResult struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	TestSessionID  uint         `gorm:"column:session_id;not null;uniqueIndex" json:"session_id"`
	Session        *TestSession `gorm:"foreignKey:TestSessionID;constraint:OnDelete:CASCADE" json:"session,omitempty"`
	CorrectAnswers int          `gorm:"not null;default:0" json:"correct_answers"`
	TotalQuestions int          `gorm:"not null;default:0" json:"total_questions"`
	Score          float64      `gorm:"not null;default:0" json:"score"`
	TimeTaken      int          `gorm:"not null;default:0" json:"time_taken"` // seconds
	TelegramSent   bool         `gorm:"not null;default:false" json:"telegram_sent"`
	AdminNotified  bool         `gorm:"not null;default:false" json:"admin_notified"`
	CreatedAt      time.Time    `json:"created_at"`
}

// TimeTakenDisplay renders the elapsed time as M:SS, e.g. 125 -> "2:05".
func (r *TestResult) TimeTakenDisplay() string {
	return fmt.Sprintf("%d:%02d", r.TimeTaken/60, r.TimeTaken%60)
}
