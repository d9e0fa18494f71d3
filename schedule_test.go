package realty

import (
	"testing"
	"time"
)

func TestGenerateMonthlySchedule(t *testing.T) {
	lease := Lease{
		ID:          "l1",
		StartDate:   MustParse("2024-01-01"),
		EndDate:     MustParse("2024-06-01"),
		MonthlyRent: PHP(10000),
	}
	got := GenerateMonthlySchedule(lease)
	if len(got) != 6 {
		t.Fatalf("GenerateMonthlySchedule() returned %d drafts, want 6", len(got))
	}
	for i, pay := range got {
		want := NewDate(2024, time.Month(1+i), 1)
		if pay.Date != want {
			t.Errorf("draft %d date = %v, want %v", i, pay.Date, want)
		}
		if !pay.Amount.Equal(PHP(10000)) {
			t.Errorf("draft %d amount = %v, want %v", i, pay.Amount, PHP(10000))
		}
		if pay.State != PaymentPending || pay.Type != RentPayment || pay.Method != CheckMethod || pay.LeaseID != "l1" {
			t.Errorf("draft %d = %+v, want a pending Rent check for l1", i, pay)
		}
	}
}

func TestGenerateMonthlyScheduleMonthEnd(t *testing.T) {
	lease := Lease{StartDate: MustParse("2024-01-31"), EndDate: MustParse("2024-05-31"), MonthlyRent: PHP(1)}
	want := []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30", "2024-05-31"}

	got := GenerateMonthlySchedule(lease)
	if len(got) != len(want) {
		t.Fatalf("GenerateMonthlySchedule() returned %d drafts, want %d", len(got), len(want))
	}
	for i, pay := range got {
		if pay.Date.String() != want[i] {
			t.Errorf("draft %d date = %v, want %v", i, pay.Date, want[i])
		}
	}
}

func TestGenerateMonthlyScheduleEmpty(t *testing.T) {
	tests := []struct {
		name  string
		lease Lease
	}{
		{"end before start", Lease{StartDate: MustParse("2024-06-01"), EndDate: MustParse("2024-01-01")}},
		{"no dates", Lease{}},
		{"no end", Lease{StartDate: MustParse("2024-06-01")}},
	}
	for _, tt := range tests {
		if got := GenerateMonthlySchedule(tt.lease); len(got) != 0 {
			t.Errorf("%s: GenerateMonthlySchedule() = %v, want none", tt.name, got)
		}
	}
	single := Lease{StartDate: MustParse("2024-06-01"), EndDate: MustParse("2024-06-01")}
	if got := GenerateMonthlySchedule(single); len(got) != 1 {
		t.Errorf("GenerateMonthlySchedule() on a single day lease returned %d drafts, want 1", len(got))
	}
}
