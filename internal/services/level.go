package services

import (
	"errors"
	"fmt"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"gorm.io/gorm"
)

// LevelCache holds the active-level listing. Any cache error falls through
// to the database.
type LevelCache interface {
	GetActiveLevels() ([]models.Level, error)
	SetActiveLevels(levels []models.Level) error
	InvalidateLevels() error
}

type LevelService struct {
	db    *gorm.DB
	cache LevelCache
}

func NewLevelService(db *gorm.DB, cache LevelCache) *LevelService {
	return &LevelService{db: db, cache: cache}
}

func (s *LevelService) ListActive() ([]models.Level, error) {
	if s.cache != nil {
		if levels, err := s.cache.GetActiveLevels(); err == nil {
			return levels, nil
		}
	}

	var levels []models.Level
	err := s.db.Where("is_active = ?", true).
		Order(`"order" ASC`).
		Find(&levels).Error
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// best effort, a failed write just means the next read hits the DB
		_ = s.cache.SetActiveLevels(levels)
	}

	return levels, nil
}

func (s *LevelService) ListAll() ([]models.Level, error) {
	var levels []models.Level
	err := s.db.Order(`"order" ASC`).Find(&levels).Error
	return levels, err
}

func (s *LevelService) GetByID(levelID uint) (*models.Level, error) {
	var level models.Level
	if err := s.db.First(&level, levelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	return &level, nil
}

type LevelInput struct {
	Name          string
	Code          string
	Order         int
	Description   string
	TimeLimit     int
	QuestionCount int
	IsActive      *bool
}

// activeOrDefault treats an unset flag as active, matching the authoring
// default. The resolved value is always written out so an explicit false
// round-trips to storage.
func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func (i LevelInput) validate() error {
	if i.Name == "" || i.Code == "" {
		return fmt.Errorf("%w: name and code are required", ErrValidation)
	}
	if i.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive", ErrValidation)
	}
	if i.QuestionCount <= 0 {
		return fmt.Errorf("%w: question_count must be positive", ErrValidation)
	}
	return nil
}

func (s *LevelService) Create(input LevelInput) (*models.Level, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	level := models.Level{
		Name:          input.Name,
		Code:          input.Code,
		Order:         input.Order,
		Description:   input.Description,
		TimeLimit:     input.TimeLimit,
		QuestionCount: input.QuestionCount,
		IsActive:      activeOrDefault(input.IsActive),
	}
	if err := s.db.Create(&level).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()
	return &level, nil
}

func (s *LevelService) Update(levelID uint, input LevelInput) (*models.Level, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	level, err := s.GetByID(levelID)
	if err != nil {
		return nil, err
	}

	level.Name = input.Name
	level.Code = input.Code
	level.Order = input.Order
	level.Description = input.Description
	level.TimeLimit = input.TimeLimit
	level.QuestionCount = input.QuestionCount
	level.IsActive = activeOrDefault(input.IsActive)

	if err := s.db.Save(level).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()
	return level, nil
}

func (s *LevelService) Delete(levelID uint) error {
	res := s.db.Delete(&models.Level{}, levelID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLevelNotFound
	}

	s.invalidateCache()
	return nil
}

func (s *LevelService) invalidateCache() {
	if s.cache != nil {
		// stale entries expire on their own TTL anyway
		_ = s.cache.InvalidateLevels()
	}
}
