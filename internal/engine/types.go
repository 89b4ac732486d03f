package engine

// Stage is the pet's life-cycle phase, derived purely from level.
type Stage string

const (
	StageEgg   Stage = "egg"
	StageBaby  Stage = "baby"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageEgg, StageBaby, StageTeen, StageAdult:
		return true
	default:
		return false
	}
}

// Stage breakpoints.
const (
	LevelBaby  = 2
	LevelTeen  = 5
	LevelAdult = 10
)

// StageForLevel maps a level to the pet's stage. Monotonic in level.
func StageForLevel(level int) Stage {
	switch {
	case level >= LevelAdult:
		return StageAdult
	case level >= LevelTeen:
		return StageTeen
	case level >= LevelBaby:
		return StageBaby
	default:
		return StageEgg
	}
}

// MaxPetNameLen bounds pet names (in runes, after trimming).
const MaxPetNameLen = 20
