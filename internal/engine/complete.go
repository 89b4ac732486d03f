package engine

import (
	"context"
	"math"

	"go.uber.org/zap"

	"ecobuddy/internal/storage"
)

type CompleteResult struct {
	TaskID       int
	ExpAwarded   float64
	BonusPercent int
	CoinsAwarded int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	Stage        Stage
}

type ExpResult struct {
	ExpAwarded   float64
	BonusPercent int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
}

// CompleteTask records one completed eco task: daily counter rollover, task
// counters, achievement-bonused EXP, coin award, and the impact counter for
// the task kind. Unknown task IDs contribute no impact update and no error.
func (s *Service) CompleteTask(ctx context.Context, taskID int, expAmount float64) (*CompleteResult, error) {
	if expAmount <= 0 {
		return nil, ValidationError{Field: "exp", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile
	levelBefore := p.Level

	today := s.today()
	if p.LastTaskDate != today {
		p.TasksToday = 1
		p.LastTaskDate = today
	} else {
		p.TasksToday++
	}
	p.TotalTasks++

	// The first-ever completion flips firstTaskDone but earns no bonus for
	// itself; the achievement pays out starting with the next award.
	bonus := TotalBoostPercent(p, s.curveFor())
	if !p.FirstTaskDone {
		p.FirstTaskDone = true
	}

	gained := expAmount * (1 + float64(bonus)/100)
	p.Exp += gained
	s.deriveLocked()

	coins := int(math.Floor(expAmount * 0.05))
	if coins > 0 {
		p.Coins += coins
	}

	applyImpact(p, taskID)

	levelUp := p.Level > levelBefore
	if levelUp {
		s.levelUp = true
	}

	s.persist(ctx)
	if _, err := s.activity.Insert(ctx, taskID, gained, bonus, coins, s.now()); err != nil {
		s.log.Warn("record activity", zap.Error(err))
	}

	return &CompleteResult{
		TaskID:       taskID,
		ExpAwarded:   gained,
		BonusPercent: bonus,
		CoinsAwarded: coins,
		LevelBefore:  levelBefore,
		LevelAfter:   p.Level,
		LevelUp:      levelUp,
		Stage:        Stage(p.Stage),
	}, nil
}

// AddExp awards EXP with the achievement bonus applied. Non-positive amounts
// are rejected.
func (s *Service) AddExp(ctx context.Context, amount float64) (*ExpResult, error) {
	if amount <= 0 {
		return nil, ValidationError{Field: "exp", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile
	levelBefore := p.Level

	bonus := TotalBoostPercent(p, s.curveFor())
	gained := amount * (1 + float64(bonus)/100)
	p.Exp += gained
	s.deriveLocked()

	levelUp := p.Level > levelBefore
	if levelUp {
		s.levelUp = true
	}

	s.persist(ctx)

	return &ExpResult{
		ExpAwarded:   gained,
		BonusPercent: bonus,
		LevelBefore:  levelBefore,
		LevelAfter:   p.Level,
		LevelUp:      levelUp,
	}, nil
}

// Per-task-kind environmental impact deltas.
func applyImpact(p *storage.PetProfile, taskID int) {
	switch taskID {
	case 1:
		p.LitterPicked += 5
	case 2:
		p.WaterSaved += 5
	case 3:
		p.ItemsRecycled += 3
	case 5:
		p.CO2Reduced += 2
	case 7:
		p.CO2Reduced += 10
	case 8:
		p.CO2Reduced += 2
	}
}
