package planner

// windowBounds is a recurrence dish's eligible day range for the current
// search branch, in horizon-relative day indexes.
type windowBounds struct {
	earliest int
	latest   int
}

// candidate is a (slot, dish) evaluation result.
type candidate struct {
	dish *dishInfo
	slot *slot

	window             *windowBounds
	ingredientConflict bool
	spacingReady       bool
	spacingOK          bool
	spacingPenalty     int
	rotationRank       int
	isUnscheduled      bool
	unusedPreferred    bool
	plannedDay         bool
	forced             bool
	reasonBase         string
	rank               []int
}

// buildCandidates produces the ranked candidate list for a slot. A locked
// slot yields exactly its pre-committed dish; an unlocked slot yields every
// eligible dish, evaluated, filtered under the active rules and ordered.
func buildCandidates(ctx *planContext, s *slot, state *plannerState) []*candidate {
	if s.lockedDishID != "" {
		dish := ctx.dishByID[s.lockedDishID]
		if dish == nil {
			return nil
		}
		reason := s.lockedReason
		if reason == "" {
			reason = "Planned for " + ctx.dayMeta[s.dayIndex].label + "."
		}
		return []*candidate{{
			dish:               dish,
			slot:               s,
			forced:             true,
			plannedDay:         true,
			spacingOK:          true,
			ingredientConflict: conflictsWith(dish, state.dayIngredients[s.dayIndex], nil),
			reasonBase:         reason,
		}}
	}

	reserved := ctx.reserved[s.dayIndex]
	used := state.dayIngredients[s.dayIndex]
	queue := state.rotation[s.meal]

	var pool []*candidate
	for _, dish := range ctx.mealDishes[s.meal] {
		c := &candidate{dish: dish, slot: s}
		c.plannedDay = dish.Frequency.HasFixedDays()
		if tracker := state.recurrence[dish.ID]; tracker != nil {
			c.window = &windowBounds{earliest: tracker.earliest(), latest: tracker.latest()}
		}
		c.isUnscheduled = c.window == nil && !c.plannedDay
		c.ingredientConflict = conflictsWith(dish, used, reserved)
		c.spacingReady = state.spacingReady(s.meal, dish.ID, s.dayIndex)

		if queue != nil && c.isUnscheduled {
			if queue.unused[dish.ID] {
				c.rotationRank = 0
				c.unusedPreferred = true
			} else {
				c.rotationRank = len(queue.order)
				for i, id := range queue.order {
					if id == dish.ID {
						c.rotationRank = i + 1
						break
					}
				}
			}
		}
		pool = append(pool, c)
	}

	pool = evaluateCandidates(ctx.softOrder, pool)
	pool = rejectByRules(ctx.rules, queue, pool)
	if len(pool) == 0 {
		return nil
	}
	pool = applyFilters(ctx.softOrder, pool)
	if len(pool) == 0 {
		return nil
	}
	return orderCandidates(pool, ctx.rng)
}

// rejectByRules drops candidates violating the active relaxation level.
// Forced candidates are never dropped: an overdue window or a planned
// weekday outranks every soft constraint.
func rejectByRules(rules Rules, queue *rotationQueue, pool []*candidate) []*candidate {
	var kept []*candidate
	for _, c := range pool {
		if c.forced {
			kept = append(kept, c)
			continue
		}
		if c.ingredientConflict && !rules.AllowIngredientConflicts && !c.plannedDay {
			continue
		}
		if !c.spacingOK && !rules.AllowSpacingViolations && !c.plannedDay {
			continue
		}
		if rules.RequireUnusedFirst && queue != nil && len(queue.unused) > 0 &&
			c.isUnscheduled && !c.unusedPreferred {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func conflictsWith(dish *dishInfo, used, reserved map[string]bool) bool {
	for _, ing := range dish.ingredients {
		if used[ing] || reserved[ing] {
			return true
		}
	}
	return false
}
