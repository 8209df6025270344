// Package planner turns a profile's dish catalog into a day-by-day meal
// assignment using ordered heuristics, depth-first backtracking search and
// progressive constraint relaxation.
package planner

import (
	"math/rand"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
)

const (
	// HorizonDaysMax bounds a single planning run.
	HorizonDaysMax = 7

	// DefaultMaxSteps caps the solver's slot visits per relaxation level.
	// Realistic catalogs stay far below this; the cap only guards against
	// pathological ones (many unconstrained dishes, many ties).
	DefaultMaxSteps = 100000
)

// ClampHorizonDays forces a horizon length into [1, HorizonDaysMax].
func ClampHorizonDays(n int) int {
	if n < 1 {
		return 1
	}
	if n > HorizonDaysMax {
		return HorizonDaysMax
	}
	return n
}

// Engine builds suggestion plans. The zero-value Engine is not usable;
// construct with New.
type Engine struct {
	rng      *rand.Rand
	maxSteps int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the random source used for recurrence-window slot choice
// and tie-breaking among equally ranked candidates. Tests pass a seeded
// source to reproduce exact plans.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithMaxSteps overrides the solver's search-step budget.
func WithMaxSteps(n int) Option {
	return func(e *Engine) { e.maxSteps = n }
}

// New creates an Engine. Without options it uses a time-seeded random
// source and the default step budget.
func New(opts ...Option) *Engine {
	e := &Engine{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// BuildSuggestionPlan assigns a dish to every (day, meal) slot from
// startDate over horizonDays days. It tries the strict rule set first and
// relaxes constraints level by level until a complete assignment exists;
// if even the loosest level fails, every slot is reported unsatisfiable.
//
// The profile is treated as an immutable snapshot; malformed catalog data
// never raises — frequencies are clamped, unknown weekdays dropped, and an
// empty catalog simply yields unsatisfiable slots.
func (e *Engine) BuildSuggestionPlan(profile *domain.Profile, startDate time.Time, horizonDays int) []domain.DayPlan {
	days := ClampHorizonDays(horizonDays)

	for _, rules := range relaxationLevels() {
		ctx := buildPlanContext(profile, startDate, days, rules, e.rng)
		state := newPlannerState(ctx)
		assignments := make([]*assignment, len(ctx.slots))
		s := &solver{ctx: ctx, maxSteps: e.maxSteps}
		if s.solve(0, state, assignments) {
			return finalizePlan(ctx, assignments)
		}
	}

	ctx := buildPlanContext(profile, startDate, days, loosestRules(), e.rng)
	return unsatisfiablePlan(ctx)
}
