package models

import "time"

type TestSession struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	SessionID   string      `gorm:"size:100;uniqueIndex;not null" json:"session_id"`
	LevelID     *uint       `gorm:"index" json:"level_id,omitempty"`
	Level       *Level      `gorm:"foreignKey:LevelID;constraint:OnDelete:SET NULL" json:"level,omitempty"`
	FirstName   string      `gorm:"size:100;not null" json:"first_name"`
	LastName    string      `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber string      `gorm:"size:20" json:"phone_number,omitempty"`
	StartTime   time.Time   `gorm:"autoCreateTime" json:"start_time"`
	EndTime     *time.Time  `json:"end_time,omitempty"`
	Completed   bool        `gorm:"not null;default:false" json:"completed"`
	Result      *TestResult `gorm:"foreignKey:TestSessionID" json:"result,omitempty"`
}

func (s *TestSession) FullName() string {
	return s.FirstName + " " + s.LastName
}
