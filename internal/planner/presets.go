package planner

// Preset is a named soft-heuristic ordering.
type Preset struct {
	ID          string
	Label       string
	Description string
	Heuristics  []HeuristicKey
}

// DefaultPresetID is used when a caller names no strategy.
const DefaultPresetID = "balanced"

var presets = []Preset{
	{
		ID:          "balanced",
		Label:       "Balanced Rotation",
		Description: "Constraints first, then duplicate avoidance and rotation fairness.",
		Heuristics:  []HeuristicKey{HeuristicAvoidDuplicates, HeuristicUnscheduled, HeuristicBorrow},
	},
	{
		ID:          "rotationFirst",
		Label:       "Rotation First",
		Description: "Cycle through unused dishes before worrying about shared ingredients.",
		Heuristics:  []HeuristicKey{HeuristicUnscheduled, HeuristicAvoidDuplicates, HeuristicBorrow},
	},
}

// Presets lists the available strategy presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByID returns the preset with the given id, falling back to the
// default preset for unknown ids.
func PresetByID(id string) Preset {
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return presets[0]
}
