package engine

import (
	"testing"

	"ecobuddy/internal/storage"
)

func TestAchievementUnlockConditions(t *testing.T) {
	c := DefaultCurve()

	p := storage.DefaultProfile(storage.MainPetKey)
	if got := TotalBoostPercent(p, c); got != 0 {
		t.Fatalf("fresh profile bonus=%d%%, want 0", got)
	}
	if got := CountUnlocked(p, c); got != 0 {
		t.Fatalf("fresh profile unlocked=%d, want 0", got)
	}

	p.FirstTaskDone = true
	if got := TotalBoostPercent(p, c); got != 1 {
		t.Fatalf("first-task bonus=%d%%, want 1", got)
	}

	p.ConsecutiveDays = 6
	if got := TotalBoostPercent(p, c); got != 1 {
		t.Fatalf("6-day bonus=%d%%, want still 1", got)
	}
	p.ConsecutiveDays = 7
	if got := TotalBoostPercent(p, c); got != 3 {
		t.Fatalf("7-day bonus=%d%%, want 3", got)
	}

	p.HatsCollected = 5
	if got := TotalBoostPercent(p, c); got != 6 {
		t.Fatalf("5-hat bonus=%d%%, want 6", got)
	}

	p.Exp = c.CumulativeForLevel(10)
	if got := TotalBoostPercent(p, c); got != 11 {
		t.Fatalf("all-unlocked bonus=%d%%, want 11", got)
	}
	if got := CountUnlocked(p, c); got != 4 {
		t.Fatalf("unlocked=%d, want 4", got)
	}

	list := AchievementsFor(p, c)
	if len(list) != 4 {
		t.Fatalf("achievement count=%d, want 4", len(list))
	}
}
