package services

import (
	"errors"
	"math"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"gorm.io/gorm"
)

const recentResultsLimit = 100

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type LevelStat struct {
	Level    string  `json:"level"`
	Count    int64   `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

type Statistics struct {
	TotalTests     int64       `json:"total_tests"`
	CompletedTests int64       `json:"completed_tests"`
	AvgScore       float64     `json:"avg_score"`
	LevelStats     []LevelStat `json:"level_stats"`
}

func (s *StatsService) Statistics() (*Statistics, error) {
	stats := &Statistics{LevelStats: []LevelStat{}}

	if err := s.db.Model(&models.TestSession{}).Count(&stats.TotalTests).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.TestSession{}).
		Where("completed = ?", true).
		Count(&stats.CompletedTests).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := s.db.Model(&models.TestResult{}).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AvgScore = round1(*avg)
	}

	var levels []models.Level
	if err := s.db.Order(`"order" ASC`).Find(&levels).Error; err != nil {
		return nil, err
	}
	for _, level := range levels {
		var count int64
		var levelAvg *float64
		if err := s.levelResults(level.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}
		if err := s.levelResults(level.ID).Select("AVG(test_results.score)").Scan(&levelAvg).Error; err != nil {
			return nil, err
		}
		stat := LevelStat{Level: level.Name, Count: count}
		if levelAvg != nil {
			stat.AvgScore = round1(*levelAvg)
		}
		stats.LevelStats = append(stats.LevelStats, stat)
	}

	return stats, nil
}

func (s *StatsService) levelResults(levelID uint) *gorm.DB {
	return s.db.Model(&models.TestResult{}).
		Joins("JOIN test_sessions ON test_sessions.id = test_results.session_id").
		Where("test_sessions.level_id = ?", levelID)
}

type ResultSummary struct {
	SessionID        string  `json:"session_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Level            string  `json:"level"`
	CorrectAnswers   int     `json:"correct_answers"`
	TotalQuestions   int     `json:"total_questions"`
	Score            float64 `json:"score"`
	TimeTaken        int     `json:"time_taken"`
	TimeTakenDisplay string  `json:"time_taken_display"`
	CreatedAt        string  `json:"created_at"`
}

// RecentResults returns the latest results, newest first, capped at 100.
func (s *StatsService) RecentResults() ([]ResultSummary, error) {
	var results []models.TestResult
	err := s.db.Preload("Session").Preload("Session.Level").
		Order("created_at DESC").
		Limit(recentResultsLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ResultSummary, 0, len(results))
	for i := range results {
		summaries = append(summaries, toSummary(&results[i]))
	}
	return summaries, nil
}

func (s *StatsService) ResultDetail(sessionID string) (*ResultSummary, error) {
	var session models.TestSession
	err := s.db.Preload("Level").
		Where("session_id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var result models.TestResult
	if err := s.db.Where("session_id = ?", session.ID).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	result.Session = &session
	summary := toSummary(&result)
	return &summary, nil
}

func toSummary(r *models.TestResult) ResultSummary {
	summary := ResultSummary{
		CorrectAnswers:   r.CorrectAnswers,
		TotalQuestions:   r.TotalQuestions,
		Score:            r.Score,
		TimeTaken:        r.TimeTaken,
		TimeTakenDisplay: r.TimeTakenDisplay(),
		CreatedAt:        r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.Session != nil {
		summary.SessionID = r.Session.SessionID
		summary.FirstName = r.Session.FirstName
		summary.LastName = r.Session.LastName
		if r.Session.Level != nil {
			summary.Level = r.Session.Level.Name
		}
	}
	return summary
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
