package models

type Level struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:50;not null" json:"name"`
	Code          string     `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Order         int        `gorm:"not null;default:0" json:"order"`
	Description   string     `gorm:"type:text" json:"description"`
	TimeLimit     int        `gorm:"not null;default:15" json:"time_limit"` // minutes
	QuestionCount int        `gorm:"not null;default:20" json:"question_count"`
	IsActive      bool       `gorm:"not null" json:"is_active"`
	Questions     []Question `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}
