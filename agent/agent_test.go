package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/realty"
	"google.golang.org/genai"
)

type loaderFunc func(context.Context) (*realty.Portfolio, error)

func (f loaderFunc) Load(ctx context.Context) (*realty.Portfolio, error) { return f(ctx) }

func samplePortfolio(context.Context) (*realty.Portfolio, error) {
	return &realty.Portfolio{
		Properties: []*realty.Property{
			{
				ID: "p1", Name: "Makati Loft", Type: realty.Condominium, Region: realty.Luzon,
				Acquisition: realty.Acquisition{UnitLotCost: realty.PHP(10_000_000)},
				Payment:     realty.PaymentInfo{Status: realty.FullyPaid},
			},
			{
				ID: "p2", Name: "Cebu Lot", Type: realty.HouseAndLot, Region: realty.Visayas,
				Acquisition: realty.Acquisition{UnitLotCost: realty.PHP(5_000_000)},
				Payment:     realty.PaymentInfo{Status: realty.Amortized},
			},
		},
	}, nil
}

func call(t *testing.T, lib Library, name string, args map[string]any) map[string]any {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Fatalf("response to %s is for %s/%s", name, resp.ID, resp.Name)
	}
	return resp.Response
}

func TestPortfolioTools(t *testing.T) {
	lib := NewLibrary(PortfolioTools(loaderFunc(samplePortfolio), realty.EmbeddedLeaseIncome))

	out := call(t, lib, "Properties", map[string]any{"location": "Visayas"})
	got, _ := out["output"].(string)
	if !strings.Contains(got, "Cebu Lot") || strings.Contains(got, "Makati Loft") {
		t.Errorf("Properties(location=Visayas) = %v", out)
	}

	out = call(t, lib, "Property", map[string]any{"id": "p1"})
	if got, _ := out["output"].(string); !strings.Contains(got, "# Makati Loft") {
		t.Errorf("Property(p1) = %v", out)
	}

	out = call(t, lib, "Property", map[string]any{"id": "missing"})
	if _, ok := out["error"]; !ok {
		t.Errorf("Property(missing) = %v, want an error", out)
	}

	out = call(t, lib, "Trend", map[string]any{"count": float64(3), "period": "quarter", "date": "2024-12-31"})
	if got, _ := out["output"].(string); !strings.Contains(got, "Q4 2024") || !strings.Contains(got, "Q2 2024") {
		t.Errorf("Trend = %v", out)
	}

	out = call(t, lib, "Trend", map[string]any{"date": "not a date"})
	if _, ok := out["error"]; !ok {
		t.Errorf("Trend(bad date) = %v, want an error", out)
	}

	out = call(t, lib, "Nope", nil)
	if _, ok := out["error"]; !ok {
		t.Errorf("unknown function = %v, want an error", out)
	}
}

func TestPortfolioToolsLoadError(t *testing.T) {
	broken := loaderFunc(func(context.Context) (*realty.Portfolio, error) { return nil, errors.New("database is down") })
	lib := NewLibrary(PortfolioTools(broken, realty.EmbeddedLeaseIncome))
	for _, name := range []string{"Summary", "Properties", "Leases", "PendingDocuments", "RecentActivity"} {
		out := call(t, lib, name, nil)
		if out["error"] != "database is down" {
			t.Errorf("%s = %v, want the load error", name, out)
		}
	}
}

func TestDeclarations(t *testing.T) {
	a := NewAnalyst(loaderFunc(samplePortfolio), realty.EmbeddedLeaseIncome)
	decls := a.Config.Tools[0].FunctionDeclarations
	if len(decls) != len(PortfolioTools(nil, realty.EmbeddedLeaseIncome)) {
		t.Errorf("analyst declares %d functions", len(decls))
	}
	f := newFacilitator(a, NewMarketResearcher())
	names := []string{}
	for _, d := range f.Config.Tools[0].FunctionDeclarations {
		names = append(names, d.Name)
	}
	if strings.Join(names, ",") != "Analyst,MarketResearcher" {
		t.Errorf("facilitator declares %v", names)
	}
}
