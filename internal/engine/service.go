package engine

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"

	"ecobuddy/internal/storage"
)

const dayFormat = "2006-01-02"

// Service is the progression engine: the single owner of the pet profile.
// All mutation goes through its operations. The in-memory profile is
// authoritative for the session; every mutation write-through persists
// best-effort (failures are logged, never fatal).
type Service struct {
	mu sync.Mutex

	db        *sql.DB
	pets      *storage.PetRepo
	activity  *storage.ActivityRepo
	purchases *storage.PurchaseRepo
	settings  *storage.SettingsRepo

	log   *zap.Logger
	curve Curve
	now   func() time.Time

	profile *storage.PetProfile
	levelUp bool
}

type Option func(*Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCurve overrides the leveling curve (policy, base, step). Without it the
// curve is flat +10 on the profile's persisted base.
func WithCurve(c Curve) Option {
	return func(s *Service) { s.curve = c }
}

// WithClock injects the clock used for daily rollover and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Open loads (or creates) the pet profile, applies the once-per-day rollover,
// re-derives level and stage from stored EXP, and returns the engine.
func Open(ctx context.Context, db *sql.DB, opts ...Option) (*Service, error) {
	s := &Service{
		db:        db,
		pets:      storage.NewPetRepo(db),
		activity:  storage.NewActivityRepo(db),
		purchases: storage.NewPurchaseRepo(db),
		settings:  storage.NewSettingsRepo(db),
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	p, err := s.pets.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	s.profile = p

	s.rolloverLocked()
	s.deriveLocked()
	s.persist(ctx)
	return s, nil
}

func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }
func (s *Service) ActivityRepo() *storage.ActivityRepo { return s.activity }
func (s *Service) PurchaseRepo() *storage.PurchaseRepo { return s.purchases }

func (s *Service) today() string {
	return s.now().Format(dayFormat)
}

// curveFor returns the effective curve: the configured one, falling back to
// the profile's persisted base EXP per level.
func (s *Service) curveFor() Curve {
	c := s.curve
	if c.Base <= 0 {
		c.Base = s.profile.ExpPerLevel
	}
	return c
}

// rolloverLocked performs the daily rollover. At most once per calendar day:
// a second run the same day sees a matching lastTaskDate and does nothing.
func (s *Service) rolloverLocked() {
	today := s.today()
	if s.profile.LastTaskDate == today {
		return
	}
	s.profile.TasksToday = 0
	s.profile.LastTaskDate = today
	s.profile.ConsecutiveDays++
}

// deriveLocked recomputes level and stage from stored EXP.
func (s *Service) deriveLocked() {
	level := s.curveFor().LevelForExp(s.profile.Exp)
	s.profile.Level = level
	s.profile.Stage = string(StageForLevel(level))
}

// persist write-through saves the profile. The in-memory copy stays
// authoritative when the write fails; the next successful save reconciles.
func (s *Service) persist(ctx context.Context) {
	if err := s.pets.Update(ctx, s.profile); err != nil {
		s.log.Warn("save pet profile", zap.Error(err))
	}
}

// Profile returns a snapshot copy of the pet profile.
func (s *Service) Profile() storage.PetProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.profile
}

func (s *Service) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Level
}

func (s *Service) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stage(s.profile.Stage)
}

// ExpToNextLevel returns the EXP still needed for the next level, floored at 0.
func (s *Service) ExpToNextLevel() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curveFor().ExpToNext(s.profile.Exp)
}

// ProgressPercent returns progress through the current level in [0, 100].
func (s *Service) ProgressPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curveFor().ProgressPercent(s.profile.Exp)
}

// Achievements returns the achievement list with unlocked flags.
func (s *Service) Achievements() []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AchievementsFor(s.profile, s.curveFor())
}

// ConsumeLevelUp reports whether a level increase happened since the last
// call, and clears the flag. The consumer owns any display window.
func (s *Service) ConsumeLevelUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.levelUp
	s.levelUp = false
	return v
}
