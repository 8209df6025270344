package domain

// FrequencyMode selects which variant of a Frequency is active.
type FrequencyMode string

const (
	// FrequencyFixedDays anchors a dish to specific weekdays. An empty day
	// set means the dish is unscheduled and rotates freely.
	FrequencyFixedDays FrequencyMode = "days"
	// FrequencyRecurrence repeats a dish every MinDays to MaxDays.
	FrequencyRecurrence FrequencyMode = "ratio"
)

const (
	// DefaultRecurrenceMinDays is assumed when a recurrence rule omits its
	// lower bound.
	DefaultRecurrenceMinDays = 7
	// RecurrenceDayMax caps both recurrence bounds.
	RecurrenceDayMax = 31
)

// Frequency is the tagged scheduling rule of a dish. Exactly one variant is
// meaningful: Days when Mode is FrequencyFixedDays, MinDays/MaxDays when
// Mode is FrequencyRecurrence.
type Frequency struct {
	Mode    FrequencyMode `json:"mode"`
	Days    []WeekdayKey  `json:"days,omitempty"`
	MinDays int           `json:"minDays,omitempty"`
	MaxDays int           `json:"maxDays,omitempty"`
}

// ClampRecurrenceDay rounds a recurrence bound into [1, RecurrenceDayMax].
// Zero and negative values are treated as unset and return 0.
func ClampRecurrenceDay(v int) int {
	if v <= 0 {
		return 0
	}
	if v > RecurrenceDayMax {
		return RecurrenceDayMax
	}
	return v
}

// NormalizeFrequency canonicalizes a raw frequency into one of the two
// variants. Recurrence bounds are clamped into [1,31], a missing minimum
// defaults to DefaultRecurrenceMinDays, a missing or inverted maximum snaps
// to the minimum. Fixed-day lists are deduplicated and restricted to the
// seven canonical keys, falling back to fallbackDays when empty.
//
// The function is pure and idempotent: normalizing its own output returns
// an equal value.
func NormalizeFrequency(raw Frequency, fallbackDays []string) Frequency {
	if raw.Mode == FrequencyRecurrence {
		minDays := ClampRecurrenceDay(raw.MinDays)
		if minDays == 0 {
			minDays = DefaultRecurrenceMinDays
		}
		maxDays := ClampRecurrenceDay(raw.MaxDays)
		if maxDays == 0 || maxDays < minDays {
			maxDays = minDays
		}
		return Frequency{Mode: FrequencyRecurrence, MinDays: minDays, MaxDays: maxDays}
	}

	source := make([]string, 0, len(raw.Days)+len(fallbackDays))
	for _, d := range raw.Days {
		source = append(source, string(d))
	}
	if len(source) == 0 {
		source = append(source, fallbackDays...)
	}
	return Frequency{Mode: FrequencyFixedDays, Days: NormalizeDays(source)}
}

// IsUnscheduled reports whether the rule imposes no explicit schedule, i.e.
// a fixed-days rule with an empty day set.
func (f Frequency) IsUnscheduled() bool {
	return f.Mode != FrequencyRecurrence && len(f.Days) == 0
}

// HasFixedDays reports whether the rule anchors the dish to specific weekdays.
func (f Frequency) HasFixedDays() bool {
	return f.Mode == FrequencyFixedDays && len(f.Days) > 0
}

// AllowsWeekday reports whether a fixed-days rule permits the given weekday.
// Recurrence rules and empty day sets allow every weekday.
func (f Frequency) AllowsWeekday(day WeekdayKey) bool {
	if !f.HasFixedDays() {
		return true
	}
	for _, d := range f.Days {
		if d == day {
			return true
		}
	}
	return false
}
