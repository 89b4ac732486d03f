package engine

import (
	"fmt"
	"strings"
)

// CurvePolicy selects how the per-level EXP cost grows.
type CurvePolicy string

const (
	// CurveFlat raises each level's cost by a flat step (the canonical policy).
	CurveFlat CurvePolicy = "flat"
	// CurvePercent raises each level's cost by a percentage step.
	CurvePercent CurvePolicy = "percent"
)

func (p CurvePolicy) IsValid() bool {
	switch p {
	case CurveFlat, CurvePercent:
		return true
	default:
		return false
	}
}

func ParseCurvePolicy(input string) (CurvePolicy, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return CurveFlat, nil
	}
	p := CurvePolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid curve policy: %q", input)
	}
	return p, nil
}

const (
	// DefaultBaseExp is the EXP cost of level 1 → 2.
	DefaultBaseExp = 100.0
	// DefaultCurveStep is the flat cost increment per level.
	DefaultCurveStep = 10.0

	// curveMaxLevel caps the derivation loop against absurd EXP values.
	curveMaxLevel = 10_000
)

// Curve is the leveling function: a pure, recomputable mapping between
// cumulative EXP and level. Stored EXP is authoritative; callers re-derive
// level from it rather than tracking level incrementally, so reloads cannot
// drift.
type Curve struct {
	Policy CurvePolicy
	Base   float64
	Step   float64
}

func DefaultCurve() Curve {
	return Curve{Policy: CurveFlat, Base: DefaultBaseExp, Step: DefaultCurveStep}
}

func (c Curve) base() float64 {
	if c.Base > 0 {
		return c.Base
	}
	return DefaultBaseExp
}

func (c Curve) step() float64 {
	if c.Step > 0 {
		return c.Step
	}
	return DefaultCurveStep
}

func (c Curve) nextCost(cost float64) float64 {
	switch c.Policy {
	case CurvePercent:
		return cost * (1 + c.step()/100)
	default:
		return cost + c.step()
	}
}

// LevelForExp returns the level reached at the given cumulative EXP.
// Level 1 → 2 costs Base; each subsequent level costs nextCost of the prior.
func (c Curve) LevelForExp(exp float64) int {
	if exp <= 0 {
		return 1
	}
	cumulative := 0.0
	cost := c.base()
	level := 1
	for cumulative+cost <= exp && level < curveMaxLevel {
		cumulative += cost
		level++
		cost = c.nextCost(cost)
	}
	return level
}

// CumulativeForLevel returns the total EXP required to reach the given level.
// Levels at or below 1 require 0.
func (c Curve) CumulativeForLevel(level int) float64 {
	if level <= 1 {
		return 0
	}
	if level > curveMaxLevel {
		level = curveMaxLevel
	}
	cumulative := 0.0
	cost := c.base()
	for l := 1; l < level; l++ {
		cumulative += cost
		cost = c.nextCost(cost)
	}
	return cumulative
}

// ExpToNext returns the EXP still missing for the next level, floored at 0.
func (c Curve) ExpToNext(exp float64) float64 {
	level := c.LevelForExp(exp)
	remaining := c.CumulativeForLevel(level+1) - exp
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ProgressPercent returns progress through the current level in [0, 100].
func (c Curve) ProgressPercent(exp float64) float64 {
	level := c.LevelForExp(exp)
	lo := c.CumulativeForLevel(level)
	hi := c.CumulativeForLevel(level + 1)
	denom := hi - lo
	if denom <= 0 {
		return 0
	}
	pct := (exp - lo) / denom * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
