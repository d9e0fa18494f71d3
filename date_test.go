package realty

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-01-15T08:30:00Z", NewDate(2024, time.January, 15), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		// Relative Duration Format
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", today.AddMonth(1), false},
		{"-3q", today.AddMonth(-9), false},
		{"+1y", today.AddMonth(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseStoredDate(t *testing.T) {
	for input, want := range map[string]Date{
		"2025-7-1":             NewDate(2025, time.July, 1),
		"2024-01-15T08:30:00Z": NewDate(2024, time.January, 15),
	} {
		if got, err := ParseStoredDate(input); err != nil || got != want {
			t.Errorf("ParseStoredDate(%q) = %v, %v, want %v", input, got, err, want)
		}
	}
	for _, input := range []string{"0d", "-1d", "+2w", "-3m", "+1y", ""} {
		if got, err := ParseStoredDate(input); err == nil {
			t.Errorf("ParseStoredDate(%q) = %v, want an error", input, got)
		}
	}
}

func TestAddMonth(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-01-15", 1, "2024-02-15"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 2, "2024-03-31"},
		{"2024-03-31", -1, "2024-02-29"},
		{"2024-05-31", 1, "2024-06-30"},
		{"2024-12-31", 2, "2025-02-28"},
		{"2024-02-29", 12, "2025-02-28"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.from).AddMonth(tt.n); got.String() != tt.want {
			t.Errorf("%s.AddMonth(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestStartEndOf(t *testing.T) {
	d := NewDate(2024, time.May, 15) // a Wednesday
	tests := []struct {
		period     Period
		start, end string
	}{
		{Daily, "2024-05-15", "2024-05-15"},
		{Weekly, "2024-05-13", "2024-05-19"},
		{Monthly, "2024-05-01", "2024-05-31"},
		{Quarterly, "2024-04-01", "2024-06-30"},
		{Yearly, "2024-01-01", "2024-12-31"},
	}
	for _, tt := range tests {
		if got := d.StartOf(tt.period); got.String() != tt.start {
			t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.start)
		}
		if got := d.EndOf(tt.period); got.String() != tt.end {
			t.Errorf("EndOf(%v) = %v, want %v", tt.period, got, tt.end)
		}
	}
}

func TestDateJSON(t *testing.T) {
	var v struct {
		On   Date `json:"on"`
		None Date `json:"none"`
		Null Date `json:"null"`
	}
	if err := json.Unmarshal([]byte(`{"on":"2024-3-5","none":"","null":null}`), &v); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if v.On != NewDate(2024, 3, 5) || !v.None.IsZero() || !v.Null.IsZero() {
		t.Errorf("json.Unmarshal() = %+v, want 2024-03-05 and two zero dates", v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"on":"2024-03-05","none":"","null":""}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
	if err := json.Unmarshal([]byte(`{"on":"march"}`), &v); err == nil {
		t.Errorf("json.Unmarshal() of an invalid date should fail")
	}
}

func TestPeriodLabel(t *testing.T) {
	d := NewDate(2024, time.August, 31)
	tests := []struct {
		period Period
		want   string
	}{
		{Monthly, "Aug 2024"},
		{Quarterly, "Q3 2024"},
		{Yearly, "2024"},
		{Weekly, "2024-08-31"},
	}
	for _, tt := range tests {
		if got := tt.period.Label(d); got != tt.want {
			t.Errorf("%v.Label() = %q, want %q", tt.period, got, tt.want)
		}
	}
	if p, err := ParsePeriod("Quarter"); err != nil || p != Quarterly {
		t.Errorf("ParsePeriod(%q) = %v, %v, want quarterly", "Quarter", p, err)
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod(%q) should fail", "fortnight")
	}
}
