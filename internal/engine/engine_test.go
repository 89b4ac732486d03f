package engine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"ecobuddy/internal/storage"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestService(t *testing.T, db *sql.DB, opts ...Option) *Service {
	t.Helper()
	svc, err := Open(context.Background(), db, opts...)
	if err != nil {
		t.Fatalf("open engine: %v", err)
	}
	return svc
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFirstTaskScenario(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	p := svc.Profile()
	if p.Exp != 0 || p.Level != 1 || p.Coins != 250 || p.FirstTaskDone {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	res, err := svc.CompleteTask(ctx, 1, 20)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res.BonusPercent != 0 {
		t.Fatalf("first task bonus=%d%%, want 0", res.BonusPercent)
	}
	if !almostEqual(res.ExpAwarded, 20) {
		t.Fatalf("first task exp awarded=%.3f, want 20", res.ExpAwarded)
	}
	if res.CoinsAwarded != 1 {
		t.Fatalf("coins awarded=%d, want 1", res.CoinsAwarded)
	}

	p = svc.Profile()
	if !almostEqual(p.Exp, 20) {
		t.Fatalf("exp=%.3f, want 20", p.Exp)
	}
	if p.TotalTasks != 1 || p.TasksToday != 1 {
		t.Fatalf("task counters=%d/%d, want 1/1", p.TotalTasks, p.TasksToday)
	}
	if p.LitterPicked != 5 {
		t.Fatalf("litterPicked=%.0f, want 5", p.LitterPicked)
	}
	if p.Coins != 251 {
		t.Fatalf("coins=%d, want 251", p.Coins)
	}
	if !p.FirstTaskDone {
		t.Fatalf("firstTaskDone not set")
	}
	if p.Level != 1 {
		t.Fatalf("level=%d, want 1", p.Level)
	}
}

func TestSecondTaskGetsFirstTaskBonus(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 1, 20); err != nil {
		t.Fatalf("complete #1: %v", err)
	}
	res, err := svc.CompleteTask(ctx, 1, 20)
	if err != nil {
		t.Fatalf("complete #2: %v", err)
	}
	if res.BonusPercent != 1 {
		t.Fatalf("second task bonus=%d%%, want 1", res.BonusPercent)
	}
	if !almostEqual(res.ExpAwarded, 20.2) {
		t.Fatalf("second task exp awarded=%.3f, want 20.2", res.ExpAwarded)
	}
}

func TestAchievementBonusAllUnlocked(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := storage.NewPetRepo(db)
	p, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	p.FirstTaskDone = true
	p.ConsecutiveDays = 7
	p.HatsCollected = 5
	p.Exp = 1260 // level 10 threshold on the default flat curve
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update pet: %v", err)
	}

	svc := newTestService(t, db)
	res, err := svc.AddExp(ctx, 100)
	if err != nil {
		t.Fatalf("AddExp: %v", err)
	}
	if res.BonusPercent != 11 {
		t.Fatalf("bonus=%d%%, want 11", res.BonusPercent)
	}
	if !almostEqual(res.ExpAwarded, 111) {
		t.Fatalf("exp awarded=%.3f, want 111", res.ExpAwarded)
	}
	if got := svc.Profile().Exp; !almostEqual(got, 1371) {
		t.Fatalf("exp=%.3f, want 1371", got)
	}
}

func TestAddExpRejectsNonPositive(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	before := svc.Profile().Exp
	for _, amount := range []float64{0, -5} {
		var verr ValidationError
		if _, err := svc.AddExp(ctx, amount); !errors.As(err, &verr) {
			t.Fatalf("AddExp(%.0f) err=%v, want ValidationError", amount, err)
		}
	}
	if got := svc.Profile().Exp; got != before {
		t.Fatalf("exp changed on rejected AddExp: %.3f", got)
	}

	var verr ValidationError
	if _, err := svc.CompleteTask(ctx, 1, 0); !errors.As(err, &verr) {
		t.Fatalf("CompleteTask(0 exp) err=%v, want ValidationError", err)
	}
}

func TestLevelUpSignal(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	res, err := svc.CompleteTask(ctx, 7, 60)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.LevelUp {
		t.Fatalf("unexpected level up at %.1f exp", svc.Profile().Exp)
	}
	if svc.ConsumeLevelUp() {
		t.Fatalf("level-up flag set without a level up")
	}

	res, err = svc.CompleteTask(ctx, 7, 60)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("expected 1→2 level up, got %+v", res)
	}
	if res.Stage != StageBaby {
		t.Fatalf("stage=%q, want baby", res.Stage)
	}
	if !svc.ConsumeLevelUp() {
		t.Fatalf("level-up flag not raised")
	}
	if svc.ConsumeLevelUp() {
		t.Fatalf("level-up flag not cleared after consume")
	}
}

func TestUnknownTaskIDHasNoImpact(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 99, 20); err != nil {
		t.Fatalf("complete unknown id: %v", err)
	}
	p := svc.Profile()
	if p.LitterPicked != 0 || p.WaterSaved != 0 || p.CO2Reduced != 0 || p.ItemsRecycled != 0 {
		t.Fatalf("impact counters changed for unknown task: %+v", p)
	}
	if p.TotalTasks != 1 {
		t.Fatalf("totalTasks=%d, want 1", p.TotalTasks)
	}
}

func TestImpactRouting(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	for _, id := range []int{1, 2, 3, 5, 7, 8, 4, 6} {
		if _, err := svc.CompleteTask(ctx, id, 20); err != nil {
			t.Fatalf("complete %d: %v", id, err)
		}
	}
	p := svc.Profile()
	if p.LitterPicked != 5 {
		t.Fatalf("litterPicked=%.0f, want 5", p.LitterPicked)
	}
	if p.WaterSaved != 5 {
		t.Fatalf("waterSaved=%.0f, want 5", p.WaterSaved)
	}
	if p.ItemsRecycled != 3 {
		t.Fatalf("itemsRecycled=%.0f, want 3", p.ItemsRecycled)
	}
	if p.CO2Reduced != 14 {
		t.Fatalf("co2Reduced=%.0f, want 14 (2+10+2)", p.CO2Reduced)
	}
}

func TestCoinAwardFloors(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	res, err := svc.CompleteTask(ctx, 6, 19)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.CoinsAwarded != 0 {
		t.Fatalf("coins awarded=%d, want 0 (floor of 0.95)", res.CoinsAwarded)
	}
	if got := svc.Profile().Coins; got != 250 {
		t.Fatalf("coins=%d, want unchanged 250", got)
	}
}

func TestSpendCoins(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	if err := svc.SpendCoins(ctx, 100); err != nil {
		t.Fatalf("spend 100: %v", err)
	}
	if got := svc.Profile().Coins; got != 150 {
		t.Fatalf("coins=%d, want 150", got)
	}

	if err := svc.SpendCoins(ctx, 151); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("overspend err=%v, want ErrInsufficientCoins", err)
	}
	if got := svc.Profile().Coins; got != 150 {
		t.Fatalf("coins changed on failed spend: %d", got)
	}

	var verr ValidationError
	if err := svc.SpendCoins(ctx, 0); !errors.As(err, &verr) {
		t.Fatalf("spend 0 err=%v, want ValidationError", err)
	}

	if err := svc.AddCoins(ctx, 25); err != nil {
		t.Fatalf("add coins: %v", err)
	}
	if got := svc.Profile().Coins; got != 175 {
		t.Fatalf("coins=%d, want 175", got)
	}
}

func TestPurchaseAndHats(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	if err := svc.Purchase(ctx, 4, "Plant Hat", 120); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := svc.AddHat(ctx); err != nil {
		t.Fatalf("add hat: %v", err)
	}
	p := svc.Profile()
	if p.Coins != 130 {
		t.Fatalf("coins=%d, want 130", p.Coins)
	}
	if p.HatsCollected != 1 {
		t.Fatalf("hats=%d, want 1", p.HatsCollected)
	}

	purchases, err := svc.PurchaseRepo().ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("list purchases: %v", err)
	}
	if len(purchases) != 1 || purchases[0].Name != "Plant Hat" {
		t.Fatalf("unexpected purchases: %+v", purchases)
	}

	if err := svc.Purchase(ctx, 4, "Plant Hat", 500); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("unaffordable purchase err=%v, want ErrInsufficientCoins", err)
	}
}

func TestRenameValidation(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	var verr ValidationError
	if err := svc.RenamePet(ctx, "   "); !errors.As(err, &verr) {
		t.Fatalf("blank name err=%v, want ValidationError", err)
	}
	if err := svc.RenamePet(ctx, "abcdefghijklmnopqrstu"); !errors.As(err, &verr) {
		t.Fatalf("21-char name err=%v, want ValidationError", err)
	}
	if err := svc.RenamePet(ctx, "  Sprout  "); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := svc.Profile().Name; got != "Sprout" {
		t.Fatalf("name=%q, want trimmed Sprout", got)
	}
}

func TestDailyRolloverOnOpen(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	clock := func() time.Time { return fixed }

	repo := storage.NewPetRepo(db)
	p, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	p.LastTaskDate = fixed.AddDate(0, 0, -1).Format("2006-01-02")
	p.TasksToday = 3
	p.ConsecutiveDays = 2
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update pet: %v", err)
	}

	svc := newTestService(t, db, WithClock(clock))
	got := svc.Profile()
	if got.TasksToday != 0 {
		t.Fatalf("tasksToday=%d, want 0 after rollover", got.TasksToday)
	}
	if got.ConsecutiveDays != 3 {
		t.Fatalf("consecutiveDays=%d, want 3", got.ConsecutiveDays)
	}
	if got.LastTaskDate != fixed.Format("2006-01-02") {
		t.Fatalf("lastTaskDate=%q, want today", got.LastTaskDate)
	}

	// Re-initializing the same day must not increment again.
	svc2 := newTestService(t, db, WithClock(clock))
	if got := svc2.Profile().ConsecutiveDays; got != 3 {
		t.Fatalf("consecutiveDays after second init=%d, want 3", got)
	}
}

func TestCompleteTaskRolloverAcrossMidnight(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 23, 50, 0, 0, time.Local)
	svc := newTestService(t, db, WithClock(func() time.Time { return now }))

	if _, err := svc.CompleteTask(ctx, 1, 20); err != nil {
		t.Fatalf("complete day 1: %v", err)
	}
	if got := svc.Profile().TasksToday; got != 1 {
		t.Fatalf("tasksToday=%d, want 1", got)
	}
	daysBefore := svc.Profile().ConsecutiveDays

	now = now.Add(20 * time.Minute) // past midnight
	if _, err := svc.CompleteTask(ctx, 1, 20); err != nil {
		t.Fatalf("complete day 2: %v", err)
	}
	p := svc.Profile()
	if p.TasksToday != 1 {
		t.Fatalf("tasksToday=%d, want reset to 1 on new day", p.TasksToday)
	}
	if p.ConsecutiveDays != daysBefore {
		t.Fatalf("consecutiveDays=%d, want unchanged %d (init-only)", p.ConsecutiveDays, daysBefore)
	}
	if p.TotalTasks != 2 {
		t.Fatalf("totalTasks=%d, want 2", p.TotalTasks)
	}
}

func TestResetAll(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 7, 60); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.Purchase(ctx, 1, "Eco Food", 50); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := svc.RenamePet(ctx, "Sprout"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p := svc.Profile()
	if p.Exp != 0 || p.Level != 1 || p.Stage != "egg" {
		t.Fatalf("progress not reset: %+v", p)
	}
	if p.Name != "EcoBuddy" || p.Coins != 250 || p.ExpPerLevel != 100 {
		t.Fatalf("defaults not restored: %+v", p)
	}
	if p.TotalTasks != 0 || p.TasksToday != 0 || p.ConsecutiveDays != 0 || p.FirstTaskDone {
		t.Fatalf("counters not reset: %+v", p)
	}
	if p.LitterPicked != 0 || p.CO2Reduced != 0 {
		t.Fatalf("impact not reset: %+v", p)
	}

	activity, err := svc.ActivityRepo().ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(activity) != 0 {
		t.Fatalf("activity not cleared: %d entries", len(activity))
	}

	// Reset persists: a fresh engine sees the defaults.
	svc2 := newTestService(t, db)
	if got := svc2.Profile().Name; got != "EcoBuddy" {
		t.Fatalf("reset not persisted: name=%q", got)
	}
}

func TestLevelRederivedOnLoad(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := storage.NewPetRepo(db)
	p, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	// A stale stored level must not survive a load; exp is authoritative.
	p.Exp = 210
	p.Level = 7
	p.Stage = "adult"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update pet: %v", err)
	}

	svc := newTestService(t, db)
	got := svc.Profile()
	if got.Level != 3 {
		t.Fatalf("level=%d, want re-derived 3", got.Level)
	}
	if got.Stage != "baby" {
		t.Fatalf("stage=%q, want re-derived baby", got.Stage)
	}
}
