package planner

// Rules is one relaxation level of the solver. The strict level enforces
// everything; each later level tolerates one more class of violation so a
// feasible plan can still be found.
type Rules struct {
	AllowIngredientConflicts bool
	AllowSpacingViolations   bool
	RequireUnusedFirst       bool
}

// relaxationLevels returns the rule sets in the order they are tried:
//  1. strict, rotation-unused-first required
//  2. unused-first requirement dropped
//  3. spacing violations tolerated
//  4. ingredient conflicts tolerated
func relaxationLevels() []Rules {
	return []Rules{
		{RequireUnusedFirst: true},
		{},
		{AllowSpacingViolations: true},
		{AllowIngredientConflicts: true, AllowSpacingViolations: true},
	}
}

func loosestRules() Rules {
	levels := relaxationLevels()
	return levels[len(levels)-1]
}
