package services

import (
	"errors"
	"testing"
	"time"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"
)

func TestStatisticsAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	levelA := seedLevel(t, db, "A1", 5, 10)
	levelB := seedLevel(t, db, "B1", 5, 10)
	seedLevel(t, db, "C1", 5, 10) // no results, must not appear in level stats

	sessions := []struct {
		level     *models.Level
		score     float64
		completed bool
		hasResult bool
	}{
		{levelA, 80, true, true},
		{levelA, 60, true, true},
		{levelB, 100, true, true},
		{levelB, 0, false, false}, // abandoned session
	}
	for i, s := range sessions {
		session := models.TestSession{
			SessionID: sessionToken(i),
			LevelID:   &s.level.ID,
			FirstName: "Ali",
			LastName:  "Valiyev",
			Completed: s.completed,
		}
		if err := db.Create(&session).Error; err != nil {
			t.Fatalf("seed session: %v", err)
		}
		if s.hasResult {
			result := models.TestResult{
				TestSessionID:  session.ID,
				CorrectAnswers: int(s.score) / 10,
				TotalQuestions: 10,
				Score:          s.score,
			}
			if err := db.Create(&result).Error; err != nil {
				t.Fatalf("seed result: %v", err)
			}
		}
	}

	stats, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if stats.TotalTests != 4 {
		t.Fatalf("total_tests = %d, want 4", stats.TotalTests)
	}
	if stats.CompletedTests != 3 {
		t.Fatalf("completed_tests = %d, want 3", stats.CompletedTests)
	}
	if stats.AvgScore != 80.0 {
		t.Fatalf("avg_score = %v, want 80.0", stats.AvgScore)
	}

	if len(stats.LevelStats) != 2 {
		t.Fatalf("level stats = %+v, want entries for A1 and B1 only", stats.LevelStats)
	}
	if stats.LevelStats[0].Level != levelA.Name || stats.LevelStats[0].AvgScore != 70.0 || stats.LevelStats[0].Count != 2 {
		t.Fatalf("A1 stats = %+v, want avg 70.0 over 2", stats.LevelStats[0])
	}
	if stats.LevelStats[1].Level != levelB.Name || stats.LevelStats[1].AvgScore != 100.0 {
		t.Fatalf("B1 stats = %+v, want avg 100.0", stats.LevelStats[1])
	}
}

func TestStatisticsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	stats, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalTests != 0 || stats.CompletedTests != 0 || stats.AvgScore != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if len(stats.LevelStats) != 0 {
		t.Fatalf("expected no level stats, got %+v", stats.LevelStats)
	}
}

func TestRecentResultsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	level := seedLevel(t, db, "A1", 5, 10)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		session := models.TestSession{
			SessionID: sessionToken(i),
			LevelID:   &level.ID,
			FirstName: "Ali",
			LastName:  "Valiyev",
			Completed: true,
		}
		if err := db.Create(&session).Error; err != nil {
			t.Fatalf("seed session: %v", err)
		}
		result := models.TestResult{
			TestSessionID:  session.ID,
			TotalQuestions: 10,
			Score:          float64(i * 10),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&result).Error; err != nil {
			t.Fatalf("seed result: %v", err)
		}
	}

	results, err := svc.RecentResults()
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Score != 20.0 || results[2].Score != 0.0 {
		t.Fatalf("results not newest-first: %+v", results)
	}
	if results[0].SessionID != sessionToken(2) {
		t.Fatalf("results[0].SessionID = %q, want %q", results[0].SessionID, sessionToken(2))
	}
}

func TestResultDetail(t *testing.T) {
	db := newTestDB(t)
	level := seedLevel(t, db, "B2", 5, 10)
	q := seedQuestion(t, db, level.ID, "only")

	notifier := silentNotifier()
	sessionID := startSession(t, db, notifier, level.ID)
	scoring := NewScoringService(db, notifier)
	if _, err := scoring.SubmitTest(sessionID, []SubmittedAnswer{{AnswerID: correctAnswerID(t, q)}}, 3600); err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	svc := NewStatsService(db)
	detail, err := svc.ResultDetail(sessionID)
	if err != nil {
		t.Fatalf("ResultDetail: %v", err)
	}

	if detail.SessionID != sessionID {
		t.Fatalf("session_id = %q, want %q", detail.SessionID, sessionID)
	}
	if detail.Level != level.Name {
		t.Fatalf("level = %q, want %q", detail.Level, level.Name)
	}
	if detail.Score != 100.0 || detail.CorrectAnswers != 1 || detail.TotalQuestions != 1 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.TimeTakenDisplay != "60:00" {
		t.Fatalf("time_taken_display = %q, want 60:00", detail.TimeTakenDisplay)
	}
}

func TestResultDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	if _, err := svc.ResultDetail("IT_20250101_DEADBEEF"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("unknown session err = %v, want ErrSessionNotFound", err)
	}

	// session exists but was never submitted
	level := seedLevel(t, db, "A1", 5, 10)
	sessionID := startSession(t, db, silentNotifier(), level.ID)
	if _, err := svc.ResultDetail(sessionID); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("no-result err = %v, want ErrResultNotFound", err)
	}
}

func sessionToken(i int) string {
	return "IT_20250101_0000000" + string(rune('A'+i))
}
