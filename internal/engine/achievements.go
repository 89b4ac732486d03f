package engine

import "ecobuddy/internal/storage"

// Achievement is a badge derived from profile state; never persisted.
// Unlocked achievements grant a permanent percentage bonus on EXP gains.
type Achievement struct {
	ID              string
	Name            string
	Description     string
	Icon            string
	ExpBoostPercent int
	Unlocked        bool
}

// AchievementsFor returns all achievements with their unlocked status,
// recomputed from the profile.
func AchievementsFor(p *storage.PetProfile, c Curve) []Achievement {
	level := c.LevelForExp(p.Exp)
	return []Achievement{
		{
			ID:              "first_task",
			Name:            "First Task",
			Description:     "Complete your first eco task",
			Icon:            "🌱",
			ExpBoostPercent: 1,
			Unlocked:        p.FirstTaskDone,
		},
		{
			ID:              "seven_days",
			Name:            "7 Days Login",
			Description:     "Check in on 7 different days",
			Icon:            "📅",
			ExpBoostPercent: 2,
			Unlocked:        p.ConsecutiveDays >= 7,
		},
		{
			ID:              "five_hats",
			Name:            "5 Hats Collected",
			Description:     "Collect 5 Plant Hats from the shop",
			Icon:            "🎩",
			ExpBoostPercent: 3,
			Unlocked:        p.HatsCollected >= 5,
		},
		{
			ID:              "level_ten",
			Name:            "Level 10 Pet",
			Description:     "Raise your pet to level 10",
			Icon:            "⭐",
			ExpBoostPercent: 5,
			Unlocked:        level >= LevelAdult,
		},
	}
}

// TotalBoostPercent sums the EXP bonus of every unlocked achievement.
func TotalBoostPercent(p *storage.PetProfile, c Curve) int {
	total := 0
	for _, a := range AchievementsFor(p, c) {
		if a.Unlocked {
			total += a.ExpBoostPercent
		}
	}
	return total
}

// CountUnlocked returns how many achievements are unlocked.
func CountUnlocked(p *storage.PetProfile, c Curve) int {
	count := 0
	for _, a := range AchievementsFor(p, c) {
		if a.Unlocked {
			count++
		}
	}
	return count
}
