package importer

import (
	"fmt"
	"time"

	"github.com/evalonso/mealrota/internal/domain"
)

var validFrequencyModes = map[string]bool{
	"": true, // absent mode falls back to fixed days
	string(domain.FrequencyFixedDays):  true,
	string(domain.FrequencyRecurrence): true,
}

// ValidateProfileDocument checks the import document for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateProfileDocument(doc *ProfileDocument) []error {
	var errs []error

	if doc.Name == "" && doc.ID == "" && doc.UserID == "" {
		errs = append(errs, fmt.Errorf("profile requires a name or an id"))
	}
	if doc.MealsPerDay != 0 &&
		(doc.MealsPerDay < domain.MealsPerDayMin || doc.MealsPerDay > domain.MealsPerDayMax) {
		errs = append(errs, fmt.Errorf("mealsPerDay: value %d out of range [%d, %d]",
			doc.MealsPerDay, domain.MealsPerDayMin, domain.MealsPerDayMax))
	}

	dishIDs := make(map[string]bool)
	errs = append(errs, validateDishes(doc.Dishes, dishIDs)...)
	errs = append(errs, validateSelections(doc.Selections, dishIDs)...)

	return errs
}

func validateDishes(dishes []DishDocument, dishIDs map[string]bool) []error {
	var errs []error

	for i, d := range dishes {
		prefix := fmt.Sprintf("dishes[%d]", i)

		if d.Name == "" && d.ID == "" {
			errs = append(errs, fmt.Errorf("%s: name or id is required", prefix))
		}

		id := dishDocumentID(&d)
		if id != "" {
			if dishIDs[id] {
				errs = append(errs, fmt.Errorf("%s: duplicate dish id %q", prefix, id))
			}
			dishIDs[id] = true
		}

		if len(domain.NormalizeMealTypes(d.MealTypes)) == 0 {
			errs = append(errs, fmt.Errorf("%s.mealTypes: at least one of breakfast, lunch, dinner, supper is required", prefix))
		}

		if d.Frequency != nil && !validFrequencyModes[d.Frequency.Mode] {
			errs = append(errs, fmt.Errorf("%s.frequency.mode: invalid value %q", prefix, d.Frequency.Mode))
		}
	}

	return errs
}

func validateSelections(selections map[string]map[string]string, dishIDs map[string]bool) []error {
	var errs []error

	for date, meals := range selections {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			errs = append(errs, fmt.Errorf("selections[%q]: invalid date format (expected YYYY-MM-DD)", date))
			continue
		}
		for meal, dishID := range meals {
			prefix := fmt.Sprintf("selections[%q][%q]", date, meal)
			if !domain.ValidMealKeys[domain.MealKey(meal)] {
				errs = append(errs, fmt.Errorf("%s: unknown meal key", prefix))
			}
			if dishID == "" {
				errs = append(errs, fmt.Errorf("%s: dish id is required", prefix))
			} else if !dishIDs[dishID] {
				errs = append(errs, fmt.Errorf("%s: dish id %q not found in dishes", prefix, dishID))
			}
		}
	}

	return errs
}
