// Package cmd implements the pms command line application to manage a
// property portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/realty"
	"github.com/etnz/realty/config"
	"github.com/etnz/realty/logger"
	"github.com/etnz/realty/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	envFile  = flag.String("env", ".env", "Path to the optional .env file.")
	dbDSN    = flag.String("db", "", "Database DSN, overrides "+config.EnvDBDSN+".")
	dbDriver = flag.String("driver", "", "Database driver (sqlite or postgres), overrides "+config.EnvDBDriver+".")
	currency = flag.String("currency", "", "Portfolio currency, overrides "+config.EnvCurrency+".")
	Verbose  = flag.Bool("v", false, "Log debug messages.")
)

// EnvTestingNow fixes the current time, in "2006-01-02 15:04:05" format.
const EnvTestingNow = "REALTY_TESTING_NOW"

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	if *dbDSN != "" {
		cfg.Database.DSN = *dbDSN
	}
	if *dbDriver != "" {
		cfg.Database.Driver = strings.ToLower(*dbDriver)
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	if *Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app is what a command needs to run against the portfolio.
type app struct {
	cfg   *config.Config
	store *store.Store
	log   *zap.Logger
}

// openApp loads the configuration, installs the logger and opens the store.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.InitLogger(logger.LogConfig{Level: cfg.Log.Level, Environment: cfg.Env, ServiceName: "pms"}); err != nil {
		return nil, fmt.Errorf("cannot initialize logger: %w", err)
	}
	log := logger.FromContext(ctx)
	s, err := store.Open(cfg.Database, cfg.Currency, log)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", cfg.Database.Driver, err)
	}
	return &app{cfg: cfg, store: s, log: log}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("Closing database failed", zap.Error(err))
	}
	_ = a.log.Sync()
}

// incomeSource returns the configured income source, or flag when set.
func (a *app) incomeSource(flag string) (realty.IncomeSource, error) {
	if flag == "" {
		flag = a.cfg.IncomeSource
	}
	return realty.ParseIncomeSource(flag)
}

// money parses an amount in the portfolio currency. Empty is zero.
func (a *app) money(s string) (realty.Money, error) {
	if s == "" {
		return realty.M(0, a.cfg.Currency), nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return realty.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return realty.M(d, a.cfg.Currency), nil
}

// now returns the current time, or the one fixed by REALTY_TESTING_NOW.
func now() time.Time {
	if fixed := os.Getenv(EnvTestingNow); fixed != "" {
		if t, err := time.Parse(time.DateTime, fixed); err == nil {
			return t
		}
	}
	return time.Now()
}

func today() realty.Date { return realty.DateOf(now()) }

func init() { realty.Now = now }

// parseDateFlag parses an optional date flag, zero when empty.
func parseDateFlag(s string) (realty.Date, error) {
	if s == "" {
		return realty.Date{}, nil
	}
	return realty.ParseDate(s)
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// renderMarkdown is printMarkdown for the assistant answers.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}
