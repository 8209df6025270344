package formatter

import (
	"fmt"
	"strings"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/planner"
)

// FormatProfileList renders profiles as a table.
func FormatProfileList(profiles []*domain.Profile) string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			StyleFg.Render(p.Name),
			fmt.Sprintf("%d", p.MealsPerDay),
			Dim(HumanDate(p.CreatedAt)),
			TruncID(p.ID),
		})
	}
	return RenderTable([]string{"PROFILE", "MEALS/DAY", "CREATED", "ID"}, rows)
}

// FormatProfileInspect renders one profile with its meal set and heuristics.
func FormatProfileInspect(p *domain.Profile, dishCount int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold(p.Name), Dim(p.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Meals:"), mealBadges(p.Meals())))
	b.WriteString(fmt.Sprintf("%s  %d\n", Dim("Dishes:"), dishCount))
	if len(p.Heuristics) > 0 {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Strategy order:"), strings.Join(p.Heuristics, ", ")))
	}
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}

// FormatStrategies renders the available strategy presets.
func FormatStrategies(presets []planner.Preset) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		keys := make([]string, len(p.Heuristics))
		for i, k := range p.Heuristics {
			keys[i] = string(k)
		}
		rows = append(rows, []string{
			StyleFg.Render(p.ID),
			p.Label,
			Dim(strings.Join(keys, ", ")),
		})
	}
	return RenderTable([]string{"ID", "STRATEGY", "ORDER"}, rows)
}
