package realty

import (
	"slices"
	"testing"
)

func TestMarketValueTrend(t *testing.T) {
	a := property("A", 1_000_000, appraisal("2024-03-15", 1_500_000, "x"))
	b := property("B", 2_000_000, appraisal("2024-05-01", 2_500_000, "y"))
	properties := []*Property{a, b}

	got := MarketValueTrend(properties, MustParse("2024-06-30"), 6, Monthly)

	labels := make([]string, 0, len(got))
	values := make([]Money, 0, len(got))
	for _, p := range got {
		labels = append(labels, p.Label)
		values = append(values, p.Value)
	}
	wantLabels := []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024", "Jun 2024"}
	if !slices.Equal(labels, wantLabels) {
		t.Errorf("MarketValueTrend() labels = %v, want %v", labels, wantLabels)
	}
	wantValues := []Money{PHP(3_000_000), PHP(3_000_000), PHP(3_500_000), PHP(3_500_000), PHP(4_000_000), PHP(4_000_000)}
	for i := range wantValues {
		if !values[i].Equal(wantValues[i]) {
			t.Errorf("MarketValueTrend()[%d] = %v, want %v", i, values[i], wantValues[i])
		}
	}
	// month ends are clamped
	if got[1].On != NewDate(2024, 2, 29) {
		t.Errorf("MarketValueTrend()[1].On = %v, want 2024-02-29", got[1].On)
	}
}

func TestMarketValueTrendPeriods(t *testing.T) {
	on := MustParse("2024-06-30")
	tests := []struct {
		period Period
		count  int
		labels []string
	}{
		{Quarterly, 2, []string{"Q1 2024", "Q2 2024"}},
		{Yearly, 3, []string{"2022", "2023", "2024"}},
		{Daily, 2, []string{"2024-06-29", "2024-06-30"}},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			var labels []string
			for _, p := range MarketValueTrend(nil, on, tt.count, tt.period) {
				labels = append(labels, p.Label)
			}
			if !slices.Equal(labels, tt.labels) {
				t.Errorf("labels = %v, want %v", labels, tt.labels)
			}
		})
	}
	if got := MarketValueTrend(nil, on, 0, Monthly); got != nil {
		t.Errorf("MarketValueTrend() with no bucket = %v, want nil", got)
	}
}

func TestMarketValueTrendUnknownPeriod(t *testing.T) {
	properties := []*Property{property("A", 1_000_000)}
	for _, period := range []Period{Period(-1), Yearly + 1} {
		if got := MarketValueTrend(properties, MustParse("2024-06-30"), 3, period); got != nil {
			t.Errorf("MarketValueTrend(%d) = %v, want nil", period, got)
		}
	}
}

func TestMarketValueTrendCurrencies(t *testing.T) {
	manila := property("manila", 1_000_000, appraisal("2024-06-01", 1_200_000, "x"))
	hawaii := property("hawaii", 0)
	hawaii.Acquisition.UnitLotCost = M(500_000, "USD")

	got := MarketValueTrend([]*Property{manila, hawaii}, MustParse("2024-06-30"), 2, Monthly)
	want := []Money{PHP(1_000_000), PHP(1_200_000)}
	if len(got) != len(want) {
		t.Fatalf("MarketValueTrend() returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Value.Equal(want[i]) {
			t.Errorf("MarketValueTrend()[%d] = %v, want %v", i, got[i].Value, want[i])
		}
	}
}
