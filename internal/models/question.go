package models

import "time"

type Question struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LevelID      uint      `gorm:"not null;index" json:"level_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	Explanation  string    `gorm:"type:text" json:"explanation"`
	Image        string    `gorm:"size:500" json:"image,omitempty"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	Answers      []Answer  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
