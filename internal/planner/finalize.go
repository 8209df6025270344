package planner

import "github.com/evalonso/mealrota/internal/domain"

const reasonUnsatisfiable = "Unable to satisfy constraints."

// finalizePlan maps the winning assignment onto the day/meal report shape.
// Slots without an assignment (which only happens on a partial failure)
// report the unsatisfiable placeholder, so the output is always
// structurally complete.
func finalizePlan(ctx *planContext, assignments []*assignment) []domain.DayPlan {
	plan := emptyPlan(ctx)
	for idx, a := range assignments {
		s := ctx.slots[idx]
		if a == nil {
			continue
		}
		id := a.dish.ID
		name := a.dish.Name
		plan[s.dayIndex].Meals[s.meal] = domain.MealSuggestion{
			DishID:   &id,
			DishName: &name,
			Reason:   a.reason,
		}
	}
	return plan
}

// unsatisfiablePlan reports every slot as impossible.
func unsatisfiablePlan(ctx *planContext) []domain.DayPlan {
	return emptyPlan(ctx)
}

func emptyPlan(ctx *planContext) []domain.DayPlan {
	plan := make([]domain.DayPlan, 0, len(ctx.dayMeta))
	for _, meta := range ctx.dayMeta {
		meals := make(map[domain.MealKey]domain.MealSuggestion, len(ctx.meals))
		for _, meal := range ctx.meals {
			meals[meal] = domain.MealSuggestion{Reason: reasonUnsatisfiable}
		}
		order := make([]domain.MealKey, len(ctx.meals))
		copy(order, ctx.meals)
		plan = append(plan, domain.DayPlan{
			Date:      meta.date,
			Weekday:   meta.label,
			Meals:     meals,
			MealOrder: order,
		})
	}
	return plan
}
