// Package store persists a realty portfolio with gorm, in SQLite or
// PostgreSQL.
//
// Every write returns the canonical stored record: callers replace their
// local copy with it and never keep identifiers they made up.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/realty"
	"github.com/etnz/realty/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotConfirmed is returned by administrative operations called without confirmation.
	ErrNotConfirmed = errors.New("operation not confirmed")
)

// Store is the persistence of a portfolio.
type Store struct {
	db    *gorm.DB
	codec codec
	log   *zap.Logger
	now   func() time.Time
}

// Open connects to the database described by cfg and migrates its schema.
// Amounts are read in 'currency'.
func Open(cfg config.DatabaseConfig, currency string, log *zap.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.SQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.Postgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true, // Disables implicit prepared statement usage
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	var level gormlogger.LogLevel
	switch cfg.LogLevel {
	case "error":
		level = gormlogger.Error
	case "warn":
		level = gormlogger.Warn
	case "info":
		level = gormlogger.Info
	default:
		level = gormlogger.Silent
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Driver == config.SQLite {
		// SQLite has a single writer, and every connection to ":memory:" is a
		// different database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}
	return New(db, currency, log)
}

// New returns a store over an open database, migrating its schema.
func New(db *gorm.DB, currency string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if currency == "" {
		currency = realty.DefaultCurrency
	}
	start := time.Now()
	if err := db.AutoMigrate(models...); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	log.Debug("Database migration completed", zap.Duration("duration", time.Since(start)))
	return &Store{db: db, codec: codec{cur: currency}, log: log, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notFound maps gorm's not found error to ErrNotFound.
func notFound(err error, what, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %q: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("cannot read %s %q: %w", what, id, err)
}

// Properties returns all the properties with their appraisals and
// documents, most recently created first.
func (s *Store) Properties(ctx context.Context) ([]*realty.Property, error) {
	var rows []propertyRow
	err := s.db.WithContext(ctx).
		Preload("Appraisals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("cannot read properties: %w", err)
	}
	properties := make([]*realty.Property, 0, len(rows))
	for _, r := range rows {
		properties = append(properties, s.codec.property(r))
	}
	return properties, nil
}

// Property returns a single property with its appraisals and documents.
func (s *Store) Property(ctx context.Context, id string) (*realty.Property, error) {
	return s.property(s.db.WithContext(ctx), id)
}

func (s *Store) property(db *gorm.DB, id string) (*realty.Property, error) {
	var r propertyRow
	err := db.
		Preload("Appraisals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		First(&r, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "property", id)
	}
	return s.codec.property(r), nil
}

// Tenants returns all the tenants, most recently created first.
func (s *Store) Tenants(ctx context.Context) ([]realty.Tenant, error) {
	var rows []tenantRow
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot read tenants: %w", err)
	}
	tenants := make([]realty.Tenant, 0, len(rows))
	for _, r := range rows {
		tenants = append(tenants, s.codec.tenant(r))
	}
	return tenants, nil
}

// Leases returns all the leases, most recently created first.
func (s *Store) Leases(ctx context.Context) ([]realty.Lease, error) {
	var rows []leaseRow
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot read leases: %w", err)
	}
	leases := make([]realty.Lease, 0, len(rows))
	for _, r := range rows {
		leases = append(leases, s.codec.lease(r))
	}
	return leases, nil
}

// Payments returns all the payments by payment date.
func (s *Store) Payments(ctx context.Context) ([]realty.Payment, error) {
	var rows []paymentRow
	if err := s.db.WithContext(ctx).Order("payment_date, created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot read payments: %w", err)
	}
	payments := make([]realty.Payment, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, s.codec.payment(r))
	}
	return payments, nil
}

// Activities returns the 'limit' most recent activities, all of them if limit
// is not positive.
func (s *Store) Activities(ctx context.Context, limit int) ([]realty.Activity, error) {
	var rows []activityRow
	q := s.db.WithContext(ctx).Order("timestamp desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot read activities: %w", err)
	}
	activities := make([]realty.Activity, 0, len(rows))
	for _, r := range rows {
		activities = append(activities, activity(r))
	}
	return activities, nil
}

// Load fetches every collection concurrently and assembles the portfolio
// once they have all been read. Any failure fails the load.
func (s *Store) Load(ctx context.Context) (*realty.Portfolio, error) {
	var (
		properties []propertyRow
		appraisals []appraisalRow
		documents  []documentRow
		pf         realty.Portfolio
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("created_at desc").Find(&properties).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("created_at").Find(&appraisals).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("created_at").Find(&documents).Error
	})
	g.Go(func() (err error) {
		pf.Tenants, err = s.Tenants(ctx)
		return err
	})
	g.Go(func() (err error) {
		pf.Leases, err = s.Leases(ctx)
		return err
	})
	g.Go(func() (err error) {
		pf.Payments, err = s.Payments(ctx)
		return err
	})
	g.Go(func() (err error) {
		pf.Activities, err = s.Activities(ctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot load portfolio: %w", err)
	}

	for _, r := range properties {
		pf.Properties = append(pf.Properties, s.codec.property(r))
	}
	byProperty := make(map[string][]realty.Appraisal)
	for _, r := range appraisals {
		byProperty[r.PropertyID] = append(byProperty[r.PropertyID], s.codec.appraisal(r))
	}
	docs := make([]realty.Document, 0, len(documents))
	for _, r := range documents {
		docs = append(docs, s.codec.document(r))
	}
	pf.Attach(byProperty, docs)

	s.log.Debug("Portfolio loaded",
		zap.Int("properties", len(pf.Properties)),
		zap.Int("leases", len(pf.Leases)),
		zap.Int("payments", len(pf.Payments)))
	return &pf, nil
}

// record appends an audit entry.
func (s *Store) record(db *gorm.DB, a realty.Activity, actor string) error {
	a.ID = ""
	a.Actor = actor
	if a.Timestamp.IsZero() {
		a.Timestamp = s.now()
	}
	row := toActivityRow(a)
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("cannot record activity %q: %w", a.Title, err)
	}
	return nil
}
