package services

import (
	"errors"
	"testing"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"
)

type fakeLevelCache struct {
	levels      []models.Level
	hasValue    bool
	getCalls    int
	setCalls    int
	invalidated int
}

func (f *fakeLevelCache) GetActiveLevels() ([]models.Level, error) {
	f.getCalls++
	if !f.hasValue {
		return nil, errors.New("cache miss")
	}
	return f.levels, nil
}

func (f *fakeLevelCache) SetActiveLevels(levels []models.Level) error {
	f.setCalls++
	f.levels = levels
	f.hasValue = true
	return nil
}

func (f *fakeLevelCache) InvalidateLevels() error {
	f.invalidated++
	f.hasValue = false
	return nil
}

func TestListActiveOrdersByRank(t *testing.T) {
	db := newTestDB(t)
	svc := NewLevelService(db, nil)

	for _, l := range []models.Level{
		{Name: "Advanced", Code: "C1", Order: 3, TimeLimit: 30, QuestionCount: 30, IsActive: true},
		{Name: "Beginner", Code: "A1", Order: 1, TimeLimit: 10, QuestionCount: 10, IsActive: true},
		{Name: "Hidden", Code: "X1", Order: 0, TimeLimit: 10, QuestionCount: 10, IsActive: false},
		{Name: "Intermediate", Code: "B1", Order: 2, TimeLimit: 20, QuestionCount: 20, IsActive: true},
	} {
		if err := db.Create(&l).Error; err != nil {
			t.Fatalf("seed level: %v", err)
		}
	}

	levels, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}

	want := []string{"A1", "B1", "C1"}
	if len(levels) != len(want) {
		t.Fatalf("got %d active levels, want %d", len(levels), len(want))
	}
	for i, code := range want {
		if levels[i].Code != code {
			t.Fatalf("levels[%d].Code = %q, want %q", i, levels[i].Code, code)
		}
	}
}

func TestListActiveUsesCache(t *testing.T) {
	db := newTestDB(t)
	fc := &fakeLevelCache{}
	svc := NewLevelService(db, fc)

	seedLevel(t, db, "A1", 10, 15)

	// first call misses and populates
	if _, err := svc.ListActive(); err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if fc.setCalls != 1 {
		t.Fatalf("cache set calls = %d, want 1", fc.setCalls)
	}

	// second call is served from cache
	levels, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if fc.getCalls != 2 || len(levels) != 1 {
		t.Fatalf("getCalls=%d levels=%d, want cache hit with 1 level", fc.getCalls, len(levels))
	}
}

func TestLevelWritesInvalidateCache(t *testing.T) {
	db := newTestDB(t)
	fc := &fakeLevelCache{}
	svc := NewLevelService(db, fc)

	level, err := svc.Create(LevelInput{
		Name: "Beginner", Code: "A1", TimeLimit: 10, QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(level.ID, LevelInput{
		Name: "Beginner", Code: "A1", TimeLimit: 12, QuestionCount: 15,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := svc.Delete(level.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if fc.invalidated != 3 {
		t.Fatalf("invalidations = %d, want 3", fc.invalidated)
	}
}

func TestCreateLevelStoresActiveFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewLevelService(db, nil)

	hidden, err := svc.Create(LevelInput{
		Name: "Hidden", Code: "X1", TimeLimit: 10, QuestionCount: 10, IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var stored models.Level
	if err := db.First(&stored, hidden.ID).Error; err != nil {
		t.Fatalf("reload level: %v", err)
	}
	if stored.IsActive {
		t.Fatal("level created as inactive was stored active")
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("inactive level served to clients: %+v", active)
	}

	// omitting the flag defaults to active
	visible, err := svc.Create(LevelInput{
		Name: "Visible", Code: "A1", TimeLimit: 10, QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored = models.Level{}
	if err := db.First(&stored, visible.ID).Error; err != nil {
		t.Fatalf("reload level: %v", err)
	}
	if !stored.IsActive {
		t.Fatal("level created without the flag was stored inactive")
	}
}

func TestLevelValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewLevelService(db, nil)

	cases := []LevelInput{
		{Code: "A1", TimeLimit: 10, QuestionCount: 10},                   // no name
		{Name: "Beginner", TimeLimit: 10, QuestionCount: 10},             // no code
		{Name: "Beginner", Code: "A1", TimeLimit: 0, QuestionCount: 10},  // bad time limit
		{Name: "Beginner", Code: "A1", TimeLimit: 10, QuestionCount: -5}, // bad count
	}
	for _, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%+v) err = %v, want ErrValidation", input, err)
		}
	}
}

func TestLevelUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLevelService(db, nil)

	_, err := svc.Update(42, LevelInput{Name: "X", Code: "X", TimeLimit: 1, QuestionCount: 1})
	if !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("err = %v, want ErrLevelNotFound", err)
	}
	if err := svc.Delete(42); !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("delete err = %v, want ErrLevelNotFound", err)
	}
}
