package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFrequency_Recurrence(t *testing.T) {
	tests := []struct {
		name    string
		input   Frequency
		wantMin int
		wantMax int
	}{
		{
			name:    "missing minimum defaults to a week",
			input:   Frequency{Mode: FrequencyRecurrence},
			wantMin: 7,
			wantMax: 7,
		},
		{
			name:    "missing maximum snaps to the minimum",
			input:   Frequency{Mode: FrequencyRecurrence, MinDays: 3},
			wantMin: 3,
			wantMax: 3,
		},
		{
			name:    "inverted bounds snap to the minimum",
			input:   Frequency{Mode: FrequencyRecurrence, MinDays: 10, MaxDays: 4},
			wantMin: 10,
			wantMax: 10,
		},
		{
			name:    "bounds cap at a month",
			input:   Frequency{Mode: FrequencyRecurrence, MinDays: 90, MaxDays: 120},
			wantMin: 31,
			wantMax: 31,
		},
		{
			name:    "negative minimum treated as unset",
			input:   Frequency{Mode: FrequencyRecurrence, MinDays: -2, MaxDays: 9},
			wantMin: 7,
			wantMax: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFrequency(tt.input, nil)
			assert.Equal(t, FrequencyRecurrence, got.Mode)
			assert.Equal(t, tt.wantMin, got.MinDays)
			assert.Equal(t, tt.wantMax, got.MaxDays)
			assert.Empty(t, got.Days, "recurrence rules carry no weekday list")
		})
	}
}

func TestNormalizeFrequency_FixedDays(t *testing.T) {
	t.Run("deduplicates and validates", func(t *testing.T) {
		got := NormalizeFrequency(Frequency{
			Mode: FrequencyFixedDays,
			Days: []WeekdayKey{"Monday", "monday", "nonsense", "friday"},
		}, nil)
		assert.Equal(t, FrequencyFixedDays, got.Mode)
		assert.Equal(t, []WeekdayKey{Monday, Friday}, got.Days)
	})

	t.Run("empty day set falls back to legacy days", func(t *testing.T) {
		got := NormalizeFrequency(Frequency{Mode: FrequencyFixedDays}, []string{"tuesday", "tuesday"})
		assert.Equal(t, []WeekdayKey{Tuesday}, got.Days)
	})

	t.Run("unknown mode is treated as fixed days", func(t *testing.T) {
		got := NormalizeFrequency(Frequency{Mode: "weird"}, nil)
		assert.Equal(t, FrequencyFixedDays, got.Mode)
		assert.Empty(t, got.Days)
		assert.True(t, got.IsUnscheduled())
	})
}

// TestNormalizeFrequency_Properties checks that normalization is idempotent
// and always yields in-range recurrence bounds, for arbitrary raw input.
func TestNormalizeFrequency_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []FrequencyMode{FrequencyFixedDays, FrequencyRecurrence, "", "legacy"}
	dayTokens := []WeekdayKey{"monday", "TUESDAY", "fri", "saturday", "", "sunday"}

	for trial := 0; trial < 200; trial++ {
		raw := Frequency{
			Mode:    modes[rng.Intn(len(modes))],
			MinDays: rng.Intn(100) - 20,
			MaxDays: rng.Intn(100) - 20,
		}
		for i := rng.Intn(4); i > 0; i-- {
			raw.Days = append(raw.Days, dayTokens[rng.Intn(len(dayTokens))])
		}

		got := NormalizeFrequency(raw, nil)

		if got.Mode == FrequencyRecurrence {
			require.GreaterOrEqual(t, got.MinDays, 1, "trial %d", trial)
			require.LessOrEqual(t, got.MinDays, got.MaxDays, "trial %d", trial)
			require.LessOrEqual(t, got.MaxDays, RecurrenceDayMax, "trial %d", trial)
		} else {
			for _, d := range got.Days {
				require.Contains(t, WeekdayKeys, d, "trial %d", trial)
			}
		}

		again := NormalizeFrequency(got, nil)
		require.Equal(t, got, again, "trial %d: normalization must be idempotent", trial)
	}
}

func TestFrequencyPredicates(t *testing.T) {
	unscheduled := Frequency{Mode: FrequencyFixedDays}
	fixed := Frequency{Mode: FrequencyFixedDays, Days: []WeekdayKey{Monday}}
	recurring := Frequency{Mode: FrequencyRecurrence, MinDays: 3, MaxDays: 5}

	assert.True(t, unscheduled.IsUnscheduled())
	assert.False(t, fixed.IsUnscheduled())
	assert.False(t, recurring.IsUnscheduled())

	assert.False(t, unscheduled.HasFixedDays())
	assert.True(t, fixed.HasFixedDays())
	assert.False(t, recurring.HasFixedDays())

	assert.True(t, unscheduled.AllowsWeekday(Friday))
	assert.True(t, recurring.AllowsWeekday(Friday))
	assert.True(t, fixed.AllowsWeekday(Monday))
	assert.False(t, fixed.AllowsWeekday(Friday))
}
