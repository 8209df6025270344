package planner

import (
	"math/rand"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
)

// spacingTracker enforces a minimum gap between servings of one dish for
// one meal. lastUsed is a day index and only meaningful when used is true.
type spacingTracker struct {
	minGap   int
	lastUsed int
	used     bool
}

// rotationQueue is the round-robin fairness tracker for the unscheduled
// dishes of one meal. order is the rotation order (least recently used
// first); unused marks dishes not yet served in the current cycle.
type rotationQueue struct {
	order  []string
	unused map[string]bool
}

// recurrenceTracker follows a recurrence-window dish through the horizon.
// lastScheduledDay is relative to the horizon start and may be negative
// when derived from history or a random pre-horizon offset.
type recurrenceTracker struct {
	minDays          int
	maxDays          int
	lastScheduledDay int
}

func (t *recurrenceTracker) earliest() int { return t.lastScheduledDay + t.minDays }
func (t *recurrenceTracker) latest() int   { return t.lastScheduledDay + t.maxDays }

// plannerState is the mutable search state. Every branch of the solver
// works on its own clone, which keeps backtracking trivially correct.
type plannerState struct {
	dayIngredients []map[string]bool
	spacing        map[domain.MealKey]map[string]*spacingTracker
	rotation       map[domain.MealKey]*rotationQueue
	recurrence     map[string]*recurrenceTracker
}

func newPlannerState(ctx *planContext) *plannerState {
	s := &plannerState{
		dayIngredients: make([]map[string]bool, ctx.days),
		spacing:        make(map[domain.MealKey]map[string]*spacingTracker),
		rotation:       make(map[domain.MealKey]*rotationQueue),
		recurrence:     make(map[string]*recurrenceTracker, len(ctx.recurrence)),
	}
	for i := range s.dayIngredients {
		s.dayIngredients[i] = make(map[string]bool)
	}

	for _, meal := range ctx.meals {
		queue := &rotationQueue{unused: make(map[string]bool)}
		for _, dish := range ctx.mealDishes[meal] {
			if dish.Frequency.IsUnscheduled() {
				queue.order = append(queue.order, dish.ID)
				queue.unused[dish.ID] = true
			}
		}
		s.rotation[meal] = queue

		rotationLength := len(queue.order)
		if rotationLength < 1 {
			rotationLength = 1
		}
		trackers := make(map[string]*spacingTracker)
		for _, dish := range ctx.mealDishes[meal] {
			gap := 1
			switch {
			case dish.Frequency.Mode == domain.FrequencyRecurrence:
				gap = dish.Frequency.MinDays
			case dish.Frequency.IsUnscheduled():
				// One full cycle before any repeat.
				gap = rotationLength
			}
			if gap < 1 {
				gap = 1
			}
			trackers[dish.ID] = &spacingTracker{minGap: gap}
		}
		s.spacing[meal] = trackers
	}

	for id, tracker := range ctx.recurrence {
		copied := *tracker
		s.recurrence[id] = &copied
	}

	return s
}

func (s *plannerState) clone() *plannerState {
	next := &plannerState{
		dayIngredients: make([]map[string]bool, len(s.dayIngredients)),
		spacing:        make(map[domain.MealKey]map[string]*spacingTracker, len(s.spacing)),
		rotation:       make(map[domain.MealKey]*rotationQueue, len(s.rotation)),
		recurrence:     make(map[string]*recurrenceTracker, len(s.recurrence)),
	}
	for i, set := range s.dayIngredients {
		copied := make(map[string]bool, len(set))
		for ing := range set {
			copied[ing] = true
		}
		next.dayIngredients[i] = copied
	}
	for meal, trackers := range s.spacing {
		copied := make(map[string]*spacingTracker, len(trackers))
		for id, t := range trackers {
			c := *t
			copied[id] = &c
		}
		next.spacing[meal] = copied
	}
	for meal, queue := range s.rotation {
		order := make([]string, len(queue.order))
		copy(order, queue.order)
		unused := make(map[string]bool, len(queue.unused))
		for id := range queue.unused {
			unused[id] = true
		}
		next.rotation[meal] = &rotationQueue{order: order, unused: unused}
	}
	for id, t := range s.recurrence {
		c := *t
		next.recurrence[id] = &c
	}
	return next
}

// spacingReady reports whether the dish may be served on dayIndex without
// violating its minimum gap. Dishes never used before are always ready.
func (s *plannerState) spacingReady(meal domain.MealKey, dishID string, dayIndex int) bool {
	trackers := s.spacing[meal]
	if trackers == nil {
		return true
	}
	t := trackers[dishID]
	if t == nil || !t.used {
		return true
	}
	gap := t.minGap
	if gap < 1 {
		gap = 1
	}
	return dayIndex-t.lastUsed >= gap
}

// apply returns a clone of the state with the candidate committed to the
// slot: ingredients claimed for the day, spacing and recurrence trackers
// advanced, and the rotation queue cycled for unscheduled dishes.
func (s *plannerState) apply(sl *slot, c *candidate) *plannerState {
	next := s.clone()

	day := next.dayIngredients[sl.dayIndex]
	for _, ing := range c.dish.ingredients {
		day[ing] = true
	}

	if trackers := next.spacing[sl.meal]; trackers != nil {
		if t := trackers[c.dish.ID]; t != nil {
			t.lastUsed = sl.dayIndex
			t.used = true
		}
	}

	if t := next.recurrence[c.dish.ID]; t != nil {
		t.lastScheduledDay = sl.dayIndex
	}

	if queue := next.rotation[sl.meal]; queue != nil && c.isUnscheduled {
		delete(queue.unused, c.dish.ID)
		if len(queue.unused) == 0 {
			for _, id := range queue.order {
				queue.unused[id] = true
			}
		}
		for i, id := range queue.order {
			if id == c.dish.ID {
				queue.order = append(append(queue.order[:i:i], queue.order[i+1:]...), id)
				break
			}
		}
	}

	return next
}

// buildRecurrenceTrackers derives the pre-horizon anchor day for every
// recurrence dish: the most recent historical selection when one exists,
// otherwise a random offset inside one minimum window.
func buildRecurrenceTrackers(profile *domain.Profile, startDate time.Time, rng *rand.Rand) map[string]*recurrenceTracker {
	trackers := make(map[string]*recurrenceTracker)
	lastSelected := lastSelectionDays(profile.Selections)
	startDay := epochDay(startDate)

	for _, dish := range profile.Dishes {
		if dish.Frequency.Mode != domain.FrequencyRecurrence {
			continue
		}
		freq := domain.NormalizeFrequency(dish.Frequency, nil)
		last, ok := lastSelected[dish.ID]
		var lastScheduledDay int
		if ok {
			lastScheduledDay = last - startDay
		} else {
			lastScheduledDay = -rng.Intn(freq.MinDays)
		}
		trackers[dish.ID] = &recurrenceTracker{
			minDays:          freq.MinDays,
			maxDays:          freq.MaxDays,
			lastScheduledDay: lastScheduledDay,
		}
	}
	return trackers
}

// lastSelectionDays maps each dish id to the epoch day of its most recent
// historical selection.
func lastSelectionDays(history domain.SelectionHistory) map[string]int {
	latest := make(map[string]int)
	for date, meals := range history {
		day, ok := parseISODay(date)
		if !ok {
			continue
		}
		for _, dishID := range meals {
			if dishID == "" {
				continue
			}
			if current, seen := latest[dishID]; !seen || day > current {
				latest[dishID] = day
			}
		}
	}
	return latest
}

func epochDay(t time.Time) int {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / (24 * 60 * 60))
}

func parseISODay(value string) (int, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return 0, false
	}
	return epochDay(t), true
}
