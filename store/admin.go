package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/etnz/realty"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// wipe deletes every portfolio row, children first. The activity log is
// kept: it is the audit trail of the wipe itself.
func wipe(tx *gorm.DB) error {
	for _, m := range slices.Backward(models) {
		if _, ok := m.(*activityRow); ok {
			continue
		}
		if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
			return fmt.Errorf("cannot wipe %T: %w", m, err)
		}
	}
	return nil
}

// Reset replaces the whole portfolio with the demo properties. It refuses
// to run unless confirm is true.
func (s *Store) Reset(ctx context.Context, confirm bool, actor string) error {
	if !confirm {
		return fmt.Errorf("reset deletes every property, tenant, lease and payment: %w", ErrNotConfirmed)
	}
	demo := DemoProperties(s.codec.cur)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		for _, p := range demo {
			row := toPropertyRow(p)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cannot seed %q: %w", p.Name, err)
			}
		}
		return s.record(tx, realty.Activity{
			Kind:        realty.DataResetActivity,
			Title:       "Data Reset",
			Description: fmt.Sprintf("Portfolio reset to %d demo properties.", len(demo)),
		}, actor)
	})
	if err != nil {
		return err
	}
	s.log.Warn("Portfolio reset to demo data", zap.String("actor", actor))
	return nil
}

// Clear deletes the whole portfolio. It refuses to run unless confirm is true.
func (s *Store) Clear(ctx context.Context, confirm bool, actor string) error {
	if !confirm {
		return fmt.Errorf("clear deletes every property, tenant, lease and payment: %w", ErrNotConfirmed)
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		return s.record(tx, realty.Activity{
			Kind:        realty.DataClearedActivity,
			Title:       "Data Cleared",
			Description: "All portfolio data was deleted.",
		}, actor)
	})
	if err != nil {
		return err
	}
	s.log.Warn("Portfolio cleared", zap.String("actor", actor))
	return nil
}

// Import stores a whole portfolio, keeping its identifiers so that leases
// and payments still reference their properties, tenants and leases.
// Records are added to the existing ones; nothing is stored if any fails.
func (s *Store) Import(ctx context.Context, pf *realty.Portfolio) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range pf.Properties {
			if err := p.InCurrency(s.codec.cur); err != nil {
				return fmt.Errorf("cannot import property %q: %w", p.Name, err)
			}
			row := toPropertyRow(p)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cannot import property %q: %w", p.Name, err)
			}
		}
		for _, t := range pf.Tenants {
			row := toTenantRow(t)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cannot import tenant %q: %w", t.Name, err)
			}
		}
		for _, l := range pf.Leases {
			row := toLeaseRow(l)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cannot import lease %q: %w", l.ID, err)
			}
		}
		if len(pf.Payments) > 0 {
			rows := make([]paymentRow, 0, len(pf.Payments))
			for _, p := range pf.Payments {
				rows = append(rows, toPaymentRow(p))
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("cannot import payments: %w", err)
			}
		}
		for _, a := range pf.Activities {
			row := toActivityRow(a)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cannot import activity %q: %w", a.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("Portfolio imported",
		zap.Int("properties", len(pf.Properties)),
		zap.Int("tenants", len(pf.Tenants)),
		zap.Int("leases", len(pf.Leases)),
		zap.Int("payments", len(pf.Payments)))
	return nil
}

// DemoProperties returns the demo portfolio installed by Reset.
func DemoProperties(cur string) []*realty.Property {
	m := func(v int64) realty.Money { return realty.M(v, cur) }
	return []*realty.Property{
		{
			Name:              "Makati Prime Condominium Unit",
			Type:              realty.Condominium,
			FullAddress:       "123 Ayala Ave, Makati, Metro Manila",
			Region:            realty.Luzon,
			UnitNumber:        "18A",
			FloorNumber:       "18th Floor",
			LotNo:             "Unit 18A, Tower 1",
			TitleNo:           "CCT-12345",
			AreaSqm:           85,
			OriginalDeveloper: "Ayala Land Premier",
			BrokerName:        "Jane Doe Realty",
			BrokerContact:     "0917-123-4567",
			BuyerName:         "John Smith",
			Acquisition:       realty.Acquisition{UnitLotCost: m(15_000_000)},
			Payment:           realty.PaymentInfo{Status: realty.FullyPaid},
			Possession: realty.Possession{
				IsTurnedOver:        true,
				TurnoverDate:        realty.MustParse("2022-02-01"),
				AuthorizedRecipient: "John Smith",
			},
			Insurance: &realty.Insurance{
				CoverageDate:  realty.MustParse("2024-01-01"),
				AmountInsured: m(10_000_000),
				Company:       "AXA Philippines",
			},
			Management: realty.Management{
				RealEstateTaxes: realty.Receipt{LastPaid: realty.MustParse("2024-01-10"), AmountPaid: m(45_000)},
				CondoDues:       &realty.Receipt{LastPaid: realty.MustParse("2024-07-05"), AmountPaid: m(8_500)},
			},
		},
		{
			Name:              "BGC Corporate Office Suite",
			Type:              realty.CommercialBuilding,
			FullAddress:       "25th Street, Bonifacio Global City, Taguig",
			Region:            realty.Luzon,
			UnitNumber:        "2405",
			FloorNumber:       "24th Floor",
			LotNo:             "Unit 2405, Ecoplaza",
			TitleNo:           "CCT-98765",
			AreaSqm:           120,
			OriginalDeveloper: "Megaworld",
			BrokerName:        "BGC Realtors",
			BrokerContact:     "0918-555-0000",
			BuyerName:         "Tech Solutions Inc.",
			Acquisition:       realty.Acquisition{UnitLotCost: m(25_000_000), FitOutCost: m(3_000_000)},
			Payment:           realty.PaymentInfo{Status: realty.FullyPaid},
			Lease: &realty.LeaseInfo{
				Lessee:      "StartUp Hub",
				LeaseDate:   realty.MustParse("2023-08-01"),
				LeaseRate:   m(150_000),
				TermInYears: 3,
			},
			Possession: realty.Possession{
				IsTurnedOver:        true,
				TurnoverDate:        realty.MustParse("2023-05-15"),
				AuthorizedRecipient: "CEO Tech Solutions",
			},
			Insurance: &realty.Insurance{AmountInsured: m(30_000_000), Company: "Malayan Insurance"},
			Management: realty.Management{
				RealEstateTaxes: realty.Receipt{LastPaid: realty.MustParse("2024-01-15"), AmountPaid: m(65_000)},
				CondoDues:       &realty.Receipt{LastPaid: realty.MustParse("2024-07-01"), AmountPaid: m(12_000)},
			},
		},
	}
}
