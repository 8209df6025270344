// Package importer loads profile documents in the JSON interchange format
// (the shape produced by the web planner's export) and converts them into
// domain objects ready for persistence.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProfileDocument is the top-level JSON structure for profile import.
type ProfileDocument struct {
	ID          string                       `json:"id,omitempty"`
	UserID      string                       `json:"userId,omitempty"`
	Name        string                       `json:"name"`
	MealsPerDay int                          `json:"mealsPerDay,omitempty"`
	Heuristics  []string                     `json:"heuristics,omitempty"`
	Strategy    *StrategyDocument            `json:"strategy,omitempty"`
	Dishes      []DishDocument               `json:"dishes"`
	Selections  map[string]map[string]string `json:"selections,omitempty"`
}

// StrategyDocument names a strategy preset, optionally with a custom
// soft-heuristic order.
type StrategyDocument struct {
	ID          string   `json:"id"`
	CustomOrder []string `json:"customOrder,omitempty"`
}

// DishDocument defines one catalog entry in the import file. Days is the
// legacy top-level fixed-days list older exports used before the tagged
// frequency object existed.
type DishDocument struct {
	ID          string              `json:"id,omitempty"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	MealTypes   []string            `json:"mealTypes"`
	FoodGroups  map[string][]string `json:"foodGroups,omitempty"`
	Frequency   *FrequencyDocument  `json:"frequency,omitempty"`
	Days        []string            `json:"days,omitempty"`
}

// FrequencyDocument is the dish scheduling rule. Recurrence bounds appear
// either flat (minDays/maxDays) or nested under ratio, depending on the
// export version; nested wins when both are present.
type FrequencyDocument struct {
	Mode    string         `json:"mode,omitempty"`
	Days    []string       `json:"days,omitempty"`
	MinDays int            `json:"minDays,omitempty"`
	MaxDays int            `json:"maxDays,omitempty"`
	Ratio   *RatioDocument `json:"ratio,omitempty"`
}

// RatioDocument is the nested recurrence-bounds form.
type RatioDocument struct {
	MinDays int `json:"minDays,omitempty"`
	MaxDays int `json:"maxDays,omitempty"`
}

// LoadProfileDocument reads and parses a profile import JSON file.
func LoadProfileDocument(path string) (*ProfileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc ProfileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &doc, nil
}
