package cmd

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/realty"
	"github.com/etnz/realty/config"
	"github.com/google/subcommands"
)

func TestCommandNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, group := range groups {
		for _, c := range Commands[group] {
			if seen[c.Name()] {
				t.Errorf("command %q is registered twice", c.Name())
			}
			seen[c.Name()] = true
			if !IsRegistered(c.Name()) {
				t.Errorf("IsRegistered(%q) = false", c.Name())
			}
		}
	}
	if len(groups) != len(Commands) {
		t.Errorf("groups lists %d groups, Commands has %d", len(groups), len(Commands))
	}
	if IsRegistered("hello") {
		t.Error("IsRegistered(\"hello\") = true, want false")
	}
}

func TestFilterFlags(t *testing.T) {
	var c filterFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse([]string{"-search", "makati", "-category", "Condominium", "-location", "Luzon", "-lease", "vacant"}); err != nil {
		t.Fatal(err)
	}
	got := c.criteria()
	want := realty.Criteria{Search: "makati", Category: "Condominium", Region: "Luzon", LeaseStatus: "vacant"}
	if got != want {
		t.Errorf("criteria() = %+v, want %+v", got, want)
	}
}

func TestMoney(t *testing.T) {
	a := &app{cfg: testConfig(t)}
	tests := []struct {
		in      string
		want    realty.Money
		wantErr bool
	}{
		{"", realty.PHP(0), false},
		{"15000000", realty.PHP(15_000_000), false},
		{"1,250.50", realty.PHP(1250.5), false},
		{"abc", realty.Money{}, true},
	}
	for _, tt := range tests {
		got, err := a.money(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("money(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("money(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNowIsFixedForTests(t *testing.T) {
	t.Setenv(EnvTestingNow, "2025-03-15 10:00:00")
	if got, want := today(), realty.NewDate(2025, 3, 15); got != want {
		t.Errorf("today() = %v, want %v", got, want)
	}
}

func TestCompletion(t *testing.T) {
	root := Completion()
	for _, group := range groups {
		for _, c := range Commands[group] {
			if _, ok := root.Sub[c.Name()]; !ok {
				t.Errorf("no completion for %q", c.Name())
			}
		}
	}
	summary := root.Sub["summary"]
	for _, name := range []string{"search", "category", "location", "payment", "lease", "d", "json"} {
		if _, ok := summary.Flags[name]; !ok {
			t.Errorf("summary completion misses -%s", name)
		}
	}
	got := root.Sub["admin"].Args.Predict("")
	if strings.Join(got, ",") != "reset,clear" {
		t.Errorf("admin arguments = %v, want [reset clear]", got)
	}
	got = root.Sub["summary"].Flags["location"].Predict("")
	if strings.Join(got, ",") != "Luzon,Visayas,Mindanao" {
		t.Errorf("location values = %v", got)
	}
}

// testConfig points the global flags to a fresh database.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	old := *dbDSN
	*dbDSN = filepath.Join(t.TempDir(), "realty.db")
	t.Cleanup(func() { *dbDSN = old })
	t.Setenv("REALTY_CURRENCY", "PHP")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

// run executes the subcommand c with args.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), fs)
}

func TestWorkflow(t *testing.T) {
	testConfig(t)
	ctx := context.Background()

	if got := run(t, &adminCmd{}, "reset"); got != subcommands.ExitUsageError {
		t.Fatalf("admin reset without -confirm = %v, want usage error", got)
	}
	if got := run(t, &adminCmd{}, "-confirm", "reset"); got != subcommands.ExitSuccess {
		t.Fatalf("admin reset = %v", got)
	}
	for _, c := range []subcommands.Command{&summaryCmd{}, &propertiesCmd{}, &trendCmd{}, &documentsCmd{}, &activityCmd{}} {
		if got := run(t, c); got != subcommands.ExitSuccess {
			t.Errorf("%s = %v", c.Name(), got)
		}
	}

	report := filepath.Join(t.TempDir(), "report.csv")
	if got := run(t, &exportCmd{}, "-o", report); got != subcommands.ExitSuccess {
		t.Fatalf("export = %v", got)
	}
	content, err := os.ReadFile(report)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 || lines[0] != strings.Join(realty.CSVHeader, ",") {
		t.Errorf("export wrote:\n%s", content)
	}

	if got := run(t, &addTenantCmd{}, "-name", "StartUp Hub"); got != subcommands.ExitSuccess {
		t.Fatalf("add-tenant = %v", got)
	}
	a, err := openApp(ctx)
	if err != nil {
		t.Fatal(err)
	}
	props, err := a.store.Properties(ctx)
	if err != nil {
		t.Fatal(err)
	}
	tenants, err := a.store.Tenants(ctx)
	if err != nil {
		t.Fatal(err)
	}
	a.Close()
	if len(props) != 2 || len(tenants) != 1 {
		t.Fatalf("got %d properties and %d tenants, want 2 and 1", len(props), len(tenants))
	}

	if got := run(t, &addLeaseCmd{}, "-property", props[0].ID, "-tenant", tenants[0].ID,
		"-start", "2024-01-01", "-end", "2024-12-31", "-rent", "50,000"); got != subcommands.ExitSuccess {
		t.Fatalf("add-lease = %v", got)
	}
	a, err = openApp(ctx)
	if err != nil {
		t.Fatal(err)
	}
	leases, err := a.store.Leases(ctx)
	a.Close()
	if err != nil || len(leases) != 1 {
		t.Fatalf("Leases() = %v, %v", leases, err)
	}

	if got := run(t, &scheduleCmd{}, "-lease", leases[0].ID, "-save"); got != subcommands.ExitSuccess {
		t.Fatalf("schedule = %v", got)
	}
	a, err = openApp(ctx)
	if err != nil {
		t.Fatal(err)
	}
	payments, err := a.store.Payments(ctx)
	a.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(payments) != 12 {
		t.Fatalf("schedule saved %d payments, want 12", len(payments))
	}
	if payments[0].State != realty.PaymentPending || payments[0].Method != realty.CheckMethod {
		t.Errorf("scheduled payment = %+v, want a pending check", payments[0])
	}

	if got := run(t, &payCmd{}, "-clear", payments[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("pay -clear = %v", got)
	}
	if got := run(t, &summaryCmd{}, "-income", "standalone", "-json"); got != subcommands.ExitSuccess {
		t.Errorf("summary -income standalone = %v", got)
	}
	if got := run(t, &leasesCmd{}, "-id", leases[0].ID); got != subcommands.ExitSuccess {
		t.Errorf("leases -id = %v", got)
	}

	if got := run(t, &adminCmd{}, "-confirm", "clear"); got != subcommands.ExitSuccess {
		t.Fatalf("admin clear = %v", got)
	}
	a, err = openApp(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	pf, err := a.store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pf.Properties)+len(pf.Tenants)+len(pf.Leases)+len(pf.Payments) != 0 {
		t.Errorf("clear left %+v", pf)
	}
}

func TestReadPropertyCurrency(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	plain := write("plain.json", `{"propertyName":"Cebu Flat","acquisition":{"unitLotCost":4000000}}`)
	usd := write("usd.json", `{"propertyName":"Honolulu Condo","acquisition":{"unitLotCost":{"currency":"USD","amount":"500000"}}}`)

	p, err := readProperty(plain, "PHP")
	if err != nil {
		t.Fatalf("readProperty(plain) = %v", err)
	}
	if p.Name != "Cebu Flat" {
		t.Errorf("readProperty(plain).Name = %q", p.Name)
	}
	if _, err := readProperty(usd, "PHP"); !errors.Is(err, realty.ErrInvalid) {
		t.Errorf("readProperty(usd, PHP) = %v, want an ErrInvalid", err)
	}
	if _, err := readProperty(usd, "USD"); err != nil {
		t.Errorf("readProperty(usd, USD) = %v, want nil", err)
	}
}
