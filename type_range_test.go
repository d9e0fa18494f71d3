package realty

import (
	"slices"
	"testing"
)

func TestRangeMonths(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected []Date
	}{
		{
			name:     "first of month",
			r:        NewRange(NewDate(2024, 1, 1), NewDate(2024, 3, 1)),
			expected: []Date{NewDate(2024, 1, 1), NewDate(2024, 2, 1), NewDate(2024, 3, 1)},
		},
		{
			name:     "end before the day-of-month",
			r:        NewRange(NewDate(2024, 1, 15), NewDate(2024, 3, 14)),
			expected: []Date{NewDate(2024, 1, 15), NewDate(2024, 2, 15)},
		},
		{
			name:     "clamped to month end",
			r:        NewRange(NewDate(2024, 1, 30), NewDate(2024, 3, 30)),
			expected: []Date{NewDate(2024, 1, 30), NewDate(2024, 2, 29), NewDate(2024, 3, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.r.Months())
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Months() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	r := NewRange(NewDate(2024, 6, 1), NewDate(2024, 1, 1))
	if r.From != NewDate(2024, 1, 1) || r.To != NewDate(2024, 6, 1) {
		t.Errorf("NewRange() = %v, want swapped boundaries", r)
	}
	for _, d := range []Date{r.From, r.To, NewDate(2024, 3, 1)} {
		if !r.Contains(d) {
			t.Errorf("%v.Contains(%v) = false, want true", r, d)
		}
	}
	if r.Contains(NewDate(2024, 6, 2)) {
		t.Errorf("%v.Contains(2024-06-02) = true, want false", r)
	}
}
