package planner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
)

const dateLayout = "2006-01-02"

// slot is one (day, meal) unit requiring a dish assignment. A non-empty
// lockedDishID pre-commits the slot, either from a fixed-days rule matching
// the weekday or from the recurrence-window seeder.
type slot struct {
	index        int
	dayIndex     int
	meal         domain.MealKey
	weekday      domain.WeekdayKey
	lockedDishID string
	lockedReason string
}

// dayInfo carries per-day presentation metadata.
type dayInfo struct {
	date    string
	weekday domain.WeekdayKey
	label   string
}

// dishInfo pairs a dish with its precomputed flat ingredient set.
type dishInfo struct {
	*domain.Dish
	ingredients []string
}

// planContext is the per-solve read-only view of the problem: the slot
// grid, per-meal dish indexes, weekday locks, seeded recurrence trackers
// and the day-level ingredient reservations they imply.
type planContext struct {
	profile   *domain.Profile
	meals     []domain.MealKey
	softOrder []HeuristicKey
	days      int

	dishByID     map[string]*dishInfo
	mealDishes   map[domain.MealKey][]*dishInfo
	weekdayLocks map[domain.MealKey]map[domain.WeekdayKey]string

	slots   []*slot
	slotAt  map[domain.MealKey]map[int]*slot
	dayMeta []dayInfo

	// reserved holds, per day index, the ingredients of every locked dish
	// on that day.
	reserved []map[string]bool

	recurrence map[string]*recurrenceTracker
	rules      Rules
	rng        *rand.Rand
}

func buildPlanContext(profile *domain.Profile, startDate time.Time, days int, rules Rules, rng *rand.Rand) *planContext {
	ctx := &planContext{
		profile:      profile,
		meals:        profile.Meals(),
		softOrder:    SanitizeSoftOrder(profile.Heuristics),
		days:         days,
		dishByID:     make(map[string]*dishInfo),
		mealDishes:   make(map[domain.MealKey][]*dishInfo),
		weekdayLocks: make(map[domain.MealKey]map[domain.WeekdayKey]string),
		slotAt:       make(map[domain.MealKey]map[int]*slot),
		rules:        rules,
		rng:          rng,
	}

	for _, meal := range ctx.meals {
		ctx.mealDishes[meal] = nil
		ctx.weekdayLocks[meal] = make(map[domain.WeekdayKey]string)
		ctx.slotAt[meal] = make(map[int]*slot)
	}

	active := make(map[domain.MealKey]bool, len(ctx.meals))
	for _, meal := range ctx.meals {
		active[meal] = true
	}

	var recurrenceDishes []*dishInfo
	for _, dish := range profile.Dishes {
		info := &dishInfo{Dish: dish, ingredients: dish.Ingredients()}
		ctx.dishByID[dish.ID] = info
		for _, meal := range dish.MealTypes {
			if !active[meal] {
				continue
			}
			ctx.mealDishes[meal] = append(ctx.mealDishes[meal], info)
			// Last fixed-days dish to claim a (weekday, meal) wins.
			if dish.Frequency.HasFixedDays() {
				for _, day := range dish.Frequency.Days {
					ctx.weekdayLocks[meal][day] = dish.ID
				}
			}
		}
		if dish.Frequency.Mode == domain.FrequencyRecurrence {
			recurrenceDishes = append(recurrenceDishes, info)
		}
	}

	ctx.recurrence = buildRecurrenceTrackers(profile, startDate, rng)

	start := startDate.UTC()
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		weekday := domain.WeekdayOf(date)
		ctx.dayMeta = append(ctx.dayMeta, dayInfo{
			date:    date.Format(dateLayout),
			weekday: weekday,
			label:   weekday.Label(),
		})
		for _, meal := range ctx.meals {
			s := &slot{
				index:        len(ctx.slots),
				dayIndex:     i,
				meal:         meal,
				weekday:      weekday,
				lockedDishID: ctx.weekdayLocks[meal][weekday],
			}
			ctx.slots = append(ctx.slots, s)
			ctx.slotAt[meal][i] = s
		}
	}

	seedRecurrenceLocks(ctx, recurrenceDishes, active)

	ctx.reserved = make([]map[string]bool, days)
	for i := range ctx.reserved {
		ctx.reserved[i] = make(map[string]bool)
	}
	for _, s := range ctx.slots {
		if s.lockedDishID == "" {
			continue
		}
		dish := ctx.dishByID[s.lockedDishID]
		if dish == nil {
			continue
		}
		for _, ing := range dish.ingredients {
			ctx.reserved[s.dayIndex][ing] = true
		}
	}

	return ctx
}

// recurrenceReason describes why a recurrence dish was placed.
func recurrenceReason(freq domain.Frequency, overdue bool) string {
	if freq.Mode != domain.FrequencyRecurrence {
		if overdue {
			return "Meeting frequency target."
		}
		return "Maintaining frequency target."
	}
	label := fmt.Sprintf("every %d days", freq.MinDays)
	if freq.MinDays != freq.MaxDays {
		label = fmt.Sprintf("every %d-%d days", freq.MinDays, freq.MaxDays)
	}
	if overdue {
		return fmt.Sprintf("Overdue for %s; prioritizing frequency target.", label)
	}
	return fmt.Sprintf("Targeting %s.", label)
}
