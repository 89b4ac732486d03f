package storage

import "time"

// PetProfile is the single persisted pet record. Stored exp is authoritative;
// level and stage are re-derived from it by the engine on load and after every
// mutation, and are persisted only for display by external readers.
type PetProfile struct {
	Key             string
	Exp             float64
	Level           int
	Stage           string
	Name            string
	TotalTasks      int
	TasksToday      int
	LastTaskDate    string // calendar day, "2006-01-02"; empty until the first rollover
	Coins           int
	LitterPicked    float64
	WaterSaved      float64
	CO2Reduced      float64
	ItemsRecycled   float64
	ConsecutiveDays int
	HatsCollected   int
	FirstTaskDone   bool
	ExpPerLevel     float64
}

// DefaultProfile returns a fresh profile with the documented defaults.
func DefaultProfile(key string) *PetProfile {
	return &PetProfile{
		Key:         key,
		Exp:         0,
		Level:       1,
		Stage:       "egg",
		Name:        "EcoBuddy",
		Coins:       250,
		ExpPerLevel: 100,
	}
}

// ActivityEntry records one task completion for history views.
type ActivityEntry struct {
	ID           int64
	TaskID       int
	ExpAwarded   float64
	BonusPercent int
	CoinsAwarded int
	CompletedAt  time.Time
}

// Purchase records one shop purchase.
type Purchase struct {
	ID          int64
	ItemID      int
	Name        string
	Price       int
	PurchasedAt time.Time
}
