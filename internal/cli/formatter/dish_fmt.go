package formatter

import (
	"fmt"
	"strings"

	"github.com/evalonso/mealrota/internal/domain"
)

// FrequencyLabel describes a dish's scheduling rule in one phrase.
func FrequencyLabel(f domain.Frequency) string {
	switch {
	case f.Mode == domain.FrequencyRecurrence:
		if f.MinDays == f.MaxDays {
			return fmt.Sprintf("Every %d days", f.MinDays)
		}
		return fmt.Sprintf("Every %d-%d days", f.MinDays, f.MaxDays)
	case f.HasFixedDays():
		labels := make([]string, len(f.Days))
		for i, d := range f.Days {
			labels[i] = d.Label()
		}
		return strings.Join(labels, ", ")
	default:
		return "Rotation"
	}
}

func mealBadges(meals []domain.MealKey) string {
	parts := make([]string, len(meals))
	for i, m := range meals {
		parts[i] = MealBadge(m)
	}
	return strings.Join(parts, " ")
}

// FormatDishList renders the catalog as a table.
func FormatDishList(dishes []*domain.Dish) string {
	rows := make([][]string, 0, len(dishes))
	for _, d := range dishes {
		rows = append(rows, []string{
			StyleFg.Render(d.Name),
			mealBadges(d.MealTypes),
			Dim(FrequencyLabel(d.Frequency)),
			Dim(strings.Join(d.Ingredients(), ", ")),
			TruncID(d.ID),
		})
	}
	return RenderTable([]string{"DISH", "MEALS", "SCHEDULE", "INGREDIENTS", "ID"}, rows)
}

// FormatDishInspect renders one dish in a detail box.
func FormatDishInspect(d *domain.Dish) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(d.Name), Dim(d.ID)))
	if d.Description != "" {
		b.WriteString(d.Description + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Meals:"), mealBadges(d.MealTypes)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Schedule:"), StyleFg.Render(FrequencyLabel(d.Frequency))))

	for _, key := range domain.FoodGroupKeys {
		items := d.FoodGroups[key]
		if len(items) == 0 {
			continue
		}
		label := strings.ToUpper(key[:1]) + key[1:]
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(label+":"), strings.Join(items, ", ")))
	}
	if d.Notes != "" {
		b.WriteString("\n" + Dim(d.Notes) + "\n")
	}
	return RenderBox("Dish", strings.TrimRight(b.String(), "\n"))
}
