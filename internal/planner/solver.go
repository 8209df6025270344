package planner

// assignment is one tentative slot decision during search.
type assignment struct {
	dish   *dishInfo
	reason string
}

// solver performs ordered depth-first search over the slot sequence. No
// memoization: the horizon is at most 28 slots and hard-constraint pruning
// keeps realistic catalogs shallow. steps guards pathological ones.
type solver struct {
	ctx      *planContext
	steps    int
	maxSteps int
}

// solve assigns slots from index onward. The first branch to clear the
// last slot wins; exhausted slots clear their tentative assignment and
// propagate failure so the caller tries its next candidate.
func (s *solver) solve(index int, state *plannerState, assignments []*assignment) bool {
	if index >= len(s.ctx.slots) {
		return true
	}
	if s.maxSteps > 0 {
		s.steps++
		if s.steps > s.maxSteps {
			return false
		}
	}

	sl := s.ctx.slots[index]
	candidates := buildCandidates(s.ctx, sl, state)
	if len(candidates) == 0 {
		return false
	}

	for _, c := range candidates {
		next := state.apply(sl, c)
		assignments[index] = &assignment{dish: c.dish, reason: buildReason(c)}
		if s.solve(index+1, next, assignments) {
			return true
		}
	}
	assignments[index] = nil
	return false
}

// buildReason composes the human-readable justification for a chosen
// candidate: the base reason plus suffixes for every tolerated relaxation.
func buildReason(c *candidate) string {
	note := c.reasonBase
	if note == "" {
		note = "Rotating dish."
	}
	if c.ingredientConflict {
		if c.forced {
			note += " (duplicate ingredients tolerated)."
		} else {
			note += " (duplicate ingredients unavoidable)."
		}
	}
	if !c.spacingOK && !c.forced && !c.plannedDay {
		note += " (spacing target not possible)."
	}
	if c.rotationRank > 0 && c.isUnscheduled && !c.unusedPreferred {
		note += " (rotation target not possible)."
	}
	return note
}
