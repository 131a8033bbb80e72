//go:build unit

package availability_test

import (
	"testing"
	"time"

	"event-marketplace/internal/domain/availability"
	"event-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestIsAvailable(t *testing.T) {
	// 2025-06-01 is a Sunday, 2025-06-02 a Monday
	sunday := date(t, "2025-06-01")
	monday := date(t, "2025-06-02")

	testCases := []struct {
		name  string
		rules *availability.Rules
		day   time.Time
		want  bool
	}{
		{
			name:  "no rules at all is always available",
			rules: nil,
			day:   sunday,
			want:  true,
		},
		{
			name:  "empty rule set is available",
			rules: availability.NewRules(),
			day:   sunday,
			want:  true,
		},
		{
			name:  "blocked date wins over custom availability",
			rules: availability.NewRules(availability.Custom{Date: sunday, Available: true}, availability.Blocked{Date: sunday}),
			day:   sunday,
			want:  false,
		},
		{
			name:  "custom entry overrides recurring schedule",
			rules: availability.NewRules(availability.Custom{Date: sunday, Available: true}, availability.Recurring{Weekday: time.Sunday}),
			day:   sunday,
			want:  true,
		},
		{
			name:  "custom entry can close an otherwise open day",
			rules: availability.NewRules(availability.Custom{Date: monday, Available: false}, availability.Recurring{Weekday: time.Monday, Slots: []availability.Slot{{Start: "09:00", End: "17:00"}}}),
			day:   monday,
			want:  false,
		},
		{
			name:  "recurring weekday with a slot is available",
			rules: availability.NewRules(availability.Recurring{Weekday: time.Monday, Slots: []availability.Slot{{Start: "09:00", End: "17:00"}}}),
			day:   monday,
			want:  true,
		},
		{
			name:  "recurring weekday with no slots is unavailable",
			rules: availability.NewRules(availability.Recurring{Weekday: time.Sunday, Slots: nil}),
			day:   sunday,
			want:  false,
		},
		{
			name:  "weekday without recurring entry defaults to available",
			rules: availability.NewRules(availability.Recurring{Weekday: time.Monday, Slots: nil}),
			day:   sunday,
			want:  true,
		},
		{
			name:  "time of day is ignored",
			rules: availability.NewRules(availability.Blocked{Date: sunday}),
			day:   sunday.Add(15 * time.Hour),
			want:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, availability.IsAvailable(tc.rules, tc.day))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("null and empty documents yield no rules", func(t *testing.T) {
		for _, raw := range []string{"", "null", "  "} {
			rules, err := availability.Parse([]byte(raw))
			require.NoError(t, err)
			assert.Nil(t, rules)
		}
	})

	t.Run("full document", func(t *testing.T) {
		raw := `{
			"blockedDates": ["2025-12-25"],
			"customAvailability": [{"date": "2025-06-01", "available": false}],
			"recurringAvailability": {"Monday": [{"start": "09:00", "end": "17:00"}], "sunday": []}
		}`
		rules, err := availability.Parse([]byte(raw))
		require.NoError(t, err)
		require.Len(t, rules.All(), 4)

		assert.False(t, availability.IsAvailable(rules, date(t, "2025-12-25")))
		assert.False(t, availability.IsAvailable(rules, date(t, "2025-06-01")))
		assert.True(t, availability.IsAvailable(rules, date(t, "2025-06-02")))
		assert.False(t, availability.IsAvailable(rules, date(t, "2025-06-08")), "sunday has an empty slot list")
		assert.True(t, availability.IsAvailable(rules, date(t, "2025-06-03")), "tuesday has no entry")
	})

	t.Run("round trip through Marshal keeps behaviour", func(t *testing.T) {
		in := availability.NewRules(
			availability.Blocked{Date: date(t, "2025-12-25")},
			availability.Recurring{Weekday: time.Friday, Slots: []availability.Slot{{Start: "10:00", End: "22:00"}}},
		)
		raw, err := availability.Marshal(in)
		require.NoError(t, err)

		out, err := availability.Parse(raw)
		require.NoError(t, err)
		assert.ElementsMatch(t, in.All(), out.All())
	})

	t.Run("invalid documents", func(t *testing.T) {
		for _, raw := range []string{
			`{"blockedDates": ["not-a-date"]}`,
			`{"customAvailability": [{"date": "2025/06/01", "available": true}]}`,
			`{"recurringAvailability": {"funday": []}}`,
			`{"blockedDates": "2025-06-01"}`,
			`{"recurringAvailability": {"Monday": [], "monday": [{"start": "09:00", "end": "17:00"}]}}`,
		} {
			_, err := availability.Parse([]byte(raw))
			require.Error(t, err, raw)
			assert.True(t, errs.Is(err, errs.ErrValidation), raw)
		}
	})

	t.Run("weekday spelled twice is rejected every time", func(t *testing.T) {
		raw := []byte(`{"recurringAvailability": {"MONDAY": [{"start": "09:00", "end": "17:00"}], "monday": []}}`)
		for i := 0; i < 50; i++ {
			rules, err := availability.Parse(raw)
			require.Error(t, err)
			assert.True(t, errs.Is(err, availability.ErrInvalidRules))
			assert.Nil(t, rules)
		}
	})
}
