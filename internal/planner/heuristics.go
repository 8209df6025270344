package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// HeuristicKey names one entry of the heuristic pipeline.
type HeuristicKey string

const (
	// Hard heuristics: may disqualify a candidate outright.
	HeuristicRecurrence HeuristicKey = "recurrence"
	HeuristicWeekday    HeuristicKey = "weekday"

	// Soft heuristics: score, and filter only while a fallback remains.
	HeuristicAvoidDuplicates HeuristicKey = "avoidDuplicates"
	HeuristicUnscheduled     HeuristicKey = "unscheduled"
	HeuristicBorrow          HeuristicKey = "borrow"
)

// HardHeuristics is the fixed prefix of the evaluation order.
var HardHeuristics = []HeuristicKey{HeuristicRecurrence, HeuristicWeekday}

// SoftHeuristics is the default order of the caller-configurable suffix.
var SoftHeuristics = []HeuristicKey{HeuristicAvoidDuplicates, HeuristicUnscheduled, HeuristicBorrow}

// SanitizeSoftOrder deduplicates and validates a soft-heuristic order and
// appends any missing soft heuristics in their default order. The result
// always contains every soft heuristic exactly once.
func SanitizeSoftOrder(order []string) []HeuristicKey {
	known := make(map[HeuristicKey]bool, len(SoftHeuristics))
	for _, key := range SoftHeuristics {
		known[key] = true
	}
	seen := make(map[HeuristicKey]bool, len(SoftHeuristics))
	var out []HeuristicKey
	for _, raw := range order {
		key := HeuristicKey(strings.TrimSpace(raw))
		if !known[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	for _, key := range SoftHeuristics {
		if !seen[key] {
			out = append(out, key)
		}
	}
	return out
}

// evalResult is the outcome of one heuristic for one candidate.
type evalResult struct {
	allowed bool
	forced  bool
	score   int
	reason  string
}

// heuristic scores a candidate and may disqualify it.
type heuristic interface {
	Evaluate(c *candidate) evalResult
}

// candidateFilter narrows a pool, keeping it non-empty. Implemented by
// soft heuristics that prune in addition to scoring.
type candidateFilter interface {
	Filter(pool []*candidate) []*candidate
}

var registry = map[HeuristicKey]heuristic{
	HeuristicRecurrence:      recurrenceHeuristic{},
	HeuristicWeekday:         weekdayHeuristic{},
	HeuristicAvoidDuplicates: avoidDuplicatesHeuristic{},
	HeuristicUnscheduled:     unscheduledHeuristic{},
	HeuristicBorrow:          borrowHeuristic{},
}

// recurrenceHeuristic disallows recurrence dishes before their window
// opens and forces them once it has closed.
type recurrenceHeuristic struct{}

func (recurrenceHeuristic) Evaluate(c *candidate) evalResult {
	if c.window == nil {
		return evalResult{allowed: true, score: 3}
	}
	if c.slot.dayIndex < c.window.earliest {
		return evalResult{}
	}
	overdue := c.slot.dayIndex >= c.window.latest
	score := 1
	if overdue {
		score = 0
	}
	return evalResult{
		allowed: true,
		forced:  overdue,
		score:   score,
		reason:  recurrenceReason(c.dish.Frequency, overdue),
	}
}

// weekdayHeuristic disallows fixed-days dishes on other weekdays and
// forces them on their planned day.
type weekdayHeuristic struct{}

func (weekdayHeuristic) Evaluate(c *candidate) evalResult {
	if !c.dish.Frequency.HasFixedDays() {
		return evalResult{allowed: true, score: 2}
	}
	if !c.dish.Frequency.AllowsWeekday(c.slot.weekday) {
		return evalResult{}
	}
	return evalResult{
		allowed: true,
		forced:  true,
		score:   0,
		reason:  fmt.Sprintf("Planned for %s.", c.slot.weekday.Label()),
	}
}

// avoidDuplicatesHeuristic prefers candidates whose ingredients do not
// collide with the day's already-used set.
type avoidDuplicatesHeuristic struct{}

func (avoidDuplicatesHeuristic) Evaluate(c *candidate) evalResult {
	score := 0
	if c.ingredientConflict {
		score = 1
	}
	return evalResult{allowed: true, score: score}
}

func (avoidDuplicatesHeuristic) Filter(pool []*candidate) []*candidate {
	var clean []*candidate
	for _, c := range pool {
		if !c.ingredientConflict || c.forced {
			clean = append(clean, c)
		}
	}
	if len(clean) == 0 {
		return pool
	}
	return clean
}

// unscheduledHeuristic prefers rotation dishes still in the unused subset.
type unscheduledHeuristic struct{}

func (unscheduledHeuristic) Evaluate(c *candidate) evalResult {
	return evalResult{allowed: true, score: c.rotationRank}
}

func (unscheduledHeuristic) Filter(pool []*candidate) []*candidate {
	hasPreferred := false
	for _, c := range pool {
		if c.unusedPreferred {
			hasPreferred = true
			break
		}
	}
	if !hasPreferred {
		return pool
	}
	var kept []*candidate
	for _, c := range pool {
		if !c.isUnscheduled || c.unusedPreferred || c.forced {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return pool
	}
	return kept
}

// borrowHeuristic never filters; it only penalizes spacing violations so
// borrowed dishes sort last among otherwise equal candidates.
type borrowHeuristic struct{}

func (borrowHeuristic) Evaluate(c *candidate) evalResult {
	return evalResult{allowed: true, score: c.spacingPenalty}
}

// evaluateCandidates runs the hard prefix and the configured soft suffix
// over the pool. Hard disqualifications drop the candidate; surviving
// candidates carry their forced flag, base reason and full rank vector.
func evaluateCandidates(softOrder []HeuristicKey, pool []*candidate) []*candidate {
	var evaluated []*candidate
	for _, c := range pool {
		if !evaluateOne(softOrder, c) {
			continue
		}
		evaluated = append(evaluated, c)
	}
	return evaluated
}

func evaluateOne(softOrder []HeuristicKey, c *candidate) bool {
	c.rank = c.rank[:0]

	for _, key := range HardHeuristics {
		res := registry[key].Evaluate(c)
		if !res.allowed {
			return false
		}
		c.rank = append(c.rank, res.score)
		if res.forced {
			c.forced = true
		}
		if res.reason != "" && c.reasonBase == "" {
			c.reasonBase = res.reason
		}
	}

	// Spacing tolerance depends on the forced flag the hard heuristics
	// just decided, so it is resolved between the two phases.
	c.spacingOK = c.spacingReady || c.forced
	c.spacingPenalty = 0
	if !c.spacingOK {
		c.spacingPenalty = 1
	}

	for _, key := range softOrder {
		res := registry[key].Evaluate(c)
		c.rank = append(c.rank, res.score)
	}

	if c.reasonBase == "" {
		c.reasonBase = "Rotating dish."
	}
	return true
}

// applyFilters runs the soft heuristics' filters in configured order. Each
// filter keeps the pool non-empty to preserve feasibility.
func applyFilters(softOrder []HeuristicKey, pool []*candidate) []*candidate {
	for _, key := range softOrder {
		if f, ok := registry[key].(candidateFilter); ok {
			pool = f.Filter(pool)
		}
	}
	return pool
}

func compareRank(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return av - bv
		}
	}
	return 0
}

// orderCandidates sorts the pool lexicographically by rank vector with a
// spacing-penalty tiebreak, then shuffles runs of identical signatures for
// variety. The shuffle uses the injected random source only.
func orderCandidates(pool []*candidate, rng *rand.Rand) []*candidate {
	sorted := make([]*candidate, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := compareRank(sorted[i].rank, sorted[j].rank); cmp != 0 {
			return cmp < 0
		}
		return sorted[i].spacingPenalty < sorted[j].spacingPenalty
	})

	out := make([]*candidate, 0, len(sorted))
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sameSignature(sorted[start], sorted[end]) {
			end++
		}
		group := sorted[start:end]
		if len(group) > 1 {
			shuffled := make([]*candidate, len(group))
			copy(shuffled, group)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			group = shuffled
		}
		out = append(out, group...)
		start = end
	}
	return out
}

func sameSignature(a, b *candidate) bool {
	return compareRank(a.rank, b.rank) == 0 && a.spacingPenalty == b.spacingPenalty
}
