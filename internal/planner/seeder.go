package planner

import "github.com/evalonso/mealrota/internal/domain"

// seedRecurrenceLocks pre-commits every recurrence-window dish to at most
// one slot per applicable meal inside its eligible day window. Overdue
// dishes (window already closed before the horizon) take the earliest free
// slot deterministically; on-schedule dishes pick uniformly at random
// among the window's free slots.
//
// Seeding is a single pass per dish per run: a horizon longer than one
// window still gets only one placement.
func seedRecurrenceLocks(ctx *planContext, dishes []*dishInfo, active map[domain.MealKey]bool) {
	for _, dish := range dishes {
		tracker := ctx.recurrence[dish.ID]
		if tracker == nil {
			continue
		}
		for _, meal := range dish.MealTypes {
			if !active[meal] {
				continue
			}
			if ctx.days <= 0 {
				continue
			}
			earliest := tracker.earliest()
			latest := tracker.latest()
			if earliest >= ctx.days {
				// Not due inside this horizon.
				continue
			}
			overdue := latest < 0
			windowStart := earliest
			if windowStart < 0 {
				windowStart = 0
			}
			windowEnd := latest
			if windowEnd < windowStart {
				windowEnd = windowStart
			}
			if windowEnd > ctx.days-1 {
				windowEnd = ctx.days - 1
			}
			if windowStart > windowEnd {
				continue
			}

			var candidates []*slot
			for day := windowStart; day <= windowEnd; day++ {
				s := ctx.slotAt[meal][day]
				if s == nil || s.lockedDishID != "" {
					continue
				}
				candidates = append(candidates, s)
			}
			if len(candidates) == 0 {
				continue
			}

			chosen := candidates[0]
			if !overdue {
				chosen = candidates[ctx.rng.Intn(len(candidates))]
			}
			chosen.lockedDishID = dish.ID
			chosen.lockedReason = recurrenceReason(dish.Frequency, overdue)
			tracker.lastScheduledDay = chosen.dayIndex
		}
	}
}
