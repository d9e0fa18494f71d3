package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/realty"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateTenant stores a new tenant under a new identifier.
func (s *Store) CreateTenant(ctx context.Context, t realty.Tenant) (realty.Tenant, error) {
	if t.Status == "" {
		t.Status = realty.TenantActive
	}
	if err := t.Validate(); err != nil {
		return realty.Tenant{}, err
	}
	row := toTenantRow(t)
	row.ID = ""
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return realty.Tenant{}, fmt.Errorf("cannot create tenant %q: %w", t.Name, err)
	}
	return s.codec.tenant(row), nil
}

// CreateLease stores a new lease of an existing property to an existing tenant.
func (s *Store) CreateLease(ctx context.Context, l realty.Lease) (realty.Lease, error) {
	if l.Status == "" {
		l.Status = realty.LeaseActive
	}
	if err := l.Validate(); err != nil {
		return realty.Lease{}, err
	}
	if err := realty.InCurrency(s.codec.cur, l.MonthlyRent, l.SecurityDeposit); err != nil {
		return realty.Lease{}, err
	}
	row := toLeaseRow(l)
	row.ID = ""
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&propertyRow{}, "id = ?", l.PropertyID).Error; err != nil {
			return notFound(err, "property", l.PropertyID)
		}
		if err := tx.Select("id").First(&tenantRow{}, "id = ?", l.TenantID).Error; err != nil {
			return notFound(err, "tenant", l.TenantID)
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("cannot create lease: %w", err)
		}
		return nil
	})
	if err != nil {
		return realty.Lease{}, err
	}
	return s.codec.lease(row), nil
}

// Lease returns a single lease.
func (s *Store) Lease(ctx context.Context, id string) (realty.Lease, error) {
	var row leaseRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return realty.Lease{}, notFound(err, "lease", id)
	}
	return s.codec.lease(row), nil
}

// CreatePayment stores a payment of an existing lease. Completed payments
// are recorded in the activity log.
func (s *Store) CreatePayment(ctx context.Context, p realty.Payment, actor string) (realty.Payment, error) {
	stored, err := s.createPayments(ctx, []realty.Payment{p}, actor)
	if err != nil {
		return realty.Payment{}, err
	}
	return stored[0], nil
}

// CreatePayments stores a batch of payments atomically: either all are
// stored or none is, and the error says why.
func (s *Store) CreatePayments(ctx context.Context, payments []realty.Payment, actor string) ([]realty.Payment, error) {
	stored, err := s.createPayments(ctx, payments, actor)
	if err != nil {
		return nil, err
	}
	s.log.Info("Payments created", zap.Int("count", len(stored)))
	return stored, nil
}

func (s *Store) createPayments(ctx context.Context, payments []realty.Payment, actor string) ([]realty.Payment, error) {
	if len(payments) == 0 {
		return nil, nil
	}
	rows := make([]paymentRow, 0, len(payments))
	for i, p := range payments {
		if err := errors.Join(p.Validate(), realty.InCurrency(s.codec.cur, p.Amount)); err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		row := toPaymentRow(p)
		row.ID = ""
		rows = append(rows, row)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		leases := make(map[string]bool)
		for _, r := range rows {
			if leases[r.LeaseID] {
				continue
			}
			if err := tx.Select("id").First(&leaseRow{}, "id = ?", r.LeaseID).Error; err != nil {
				return notFound(err, "lease", r.LeaseID)
			}
			leases[r.LeaseID] = true
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("cannot create payments: %w", err)
		}
		for _, r := range rows {
			if p := s.codec.payment(r); p.State == realty.PaymentCompleted {
				if err := s.record(tx, realty.PaymentReceived(p, s.now()), actor); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	stored := make([]realty.Payment, 0, len(rows))
	for _, r := range rows {
		stored = append(stored, s.codec.payment(r))
	}
	return stored, nil
}

// SetPaymentState changes the state of a stored payment, e.g. when a post-dated
// check clears.
func (s *Store) SetPaymentState(ctx context.Context, id string, state realty.PaymentState, actor string) (realty.Payment, error) {
	var stored realty.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row paymentRow
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return notFound(err, "payment", id)
		}
		if row.Status == string(state) {
			stored = s.codec.payment(row)
			return nil
		}
		row.Status = string(state)
		if err := tx.Model(&row).Update("status", row.Status).Error; err != nil {
			return fmt.Errorf("cannot update payment %q: %w", id, err)
		}
		stored = s.codec.payment(row)
		if state == realty.PaymentCompleted {
			return s.record(tx, realty.PaymentReceived(stored, s.now()), actor)
		}
		return nil
	})
	if err != nil {
		return realty.Payment{}, err
	}
	return stored, nil
}
