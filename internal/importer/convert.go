package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
	"github.com/google/uuid"
)

// ProfileBundle is the persistence-ready result of a conversion.
type ProfileBundle struct {
	Profile    *domain.Profile
	Dishes     []*domain.Dish
	Selections []*domain.Selection
}

// Convert transforms a validated ProfileDocument into domain objects ready
// for persistence. Call ValidateProfileDocument first; Convert assumes the
// document is valid and silently drops anything it cannot place.
func Convert(doc *ProfileDocument) *ProfileBundle {
	now := time.Now().UTC()

	profile := &domain.Profile{
		ID:          uuid.New().String(),
		Name:        profileName(doc),
		MealsPerDay: domain.ClampMealsPerDay(doc.MealsPerDay),
		Heuristics:  heuristicOrder(doc),
		Selections:  domain.SelectionHistory{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	dishes := make([]*domain.Dish, 0, len(doc.Dishes))
	dishIDs := make(map[string]bool, len(doc.Dishes))
	for i := range doc.Dishes {
		d := convertDish(&doc.Dishes[i], profile.ID, now)
		dishes = append(dishes, d)
		dishIDs[d.ID] = true
	}

	var selections []*domain.Selection
	for date, meals := range doc.Selections {
		for meal, dishID := range meals {
			if !dishIDs[dishID] {
				continue
			}
			selections = append(selections, &domain.Selection{
				ProfileID: profile.ID,
				Date:      date,
				Meal:      domain.MealKey(meal),
				DishID:    dishID,
				CreatedAt: now,
			})
		}
	}

	return &ProfileBundle{Profile: profile, Dishes: dishes, Selections: selections}
}

func convertDish(d *DishDocument, profileID string, now time.Time) *domain.Dish {
	id := dishDocumentID(d)
	if id == "" {
		id = uuid.New().String()
	}
	name := d.Name
	if name == "" {
		name = id
	}
	return &domain.Dish{
		ID:          id,
		ProfileID:   profileID,
		Name:        name,
		Description: d.Description,
		Notes:       d.Notes,
		MealTypes:   domain.NormalizeMealTypes(d.MealTypes),
		FoodGroups:  domain.NormalizeFoodGroups(d.FoodGroups),
		Frequency:   convertFrequency(d),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// convertFrequency folds both export versions of the scheduling rule into
// the canonical form, falling back to the legacy top-level days list.
func convertFrequency(d *DishDocument) domain.Frequency {
	raw := domain.Frequency{Mode: domain.FrequencyFixedDays}
	if f := d.Frequency; f != nil {
		raw.Mode = domain.FrequencyMode(f.Mode)
		raw.Days = domain.NormalizeDays(f.Days)
		raw.MinDays = f.MinDays
		raw.MaxDays = f.MaxDays
		if f.Ratio != nil {
			raw.MinDays = f.Ratio.MinDays
			raw.MaxDays = f.Ratio.MaxDays
		}
	}
	return domain.NormalizeFrequency(raw, d.Days)
}

func profileName(doc *ProfileDocument) string {
	switch {
	case doc.Name != "":
		return doc.Name
	case doc.UserID != "":
		return doc.UserID
	default:
		return doc.ID
	}
}

// heuristicOrder prefers a custom strategy order over the flat heuristics
// list. Sanitizing the order is the planner's job at solve time; import
// keeps the document's intent as-is.
func heuristicOrder(doc *ProfileDocument) []string {
	if doc.Strategy != nil && len(doc.Strategy.CustomOrder) > 0 {
		return append([]string{}, doc.Strategy.CustomOrder...)
	}
	return append([]string{}, doc.Heuristics...)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify mirrors the web planner's dish id derivation.
func slugify(value string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(slug, "-")
}

func dishDocumentID(d *DishDocument) string {
	if d.ID != "" {
		return d.ID
	}
	return slugify(d.Name)
}
