package store

import (
	"context"
	"fmt"

	"github.com/etnz/realty"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateProperty validates and stores a new property with its appraisals and
// documents, under a new identifier, and records the activity.
func (s *Store) CreateProperty(ctx context.Context, p *realty.Property, actor string) (*realty.Property, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.InCurrency(s.codec.cur); err != nil {
		return nil, err
	}
	row := toPropertyRow(p)
	row.ID = ""
	for i := range row.Appraisals {
		row.Appraisals[i].ID = ""
		row.Appraisals[i].PropertyID = ""
	}
	for i := range row.Documents {
		row.Documents[i].ID = ""
		row.Documents[i].PropertyID = ""
	}

	var created *realty.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("cannot create property %q: %w", p.Name, err)
		}
		var err error
		if created, err = s.property(tx, row.ID); err != nil {
			return err
		}
		return s.record(tx, realty.PropertyAdded(created, s.now()), actor)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Property created", zap.String("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// UpdateProperty replaces a stored property, including its appraisals and
// documents, with p. Documents no longer pending are recorded as completed
// tasks.
func (s *Store) UpdateProperty(ctx context.Context, p *realty.Property, actor string) (*realty.Property, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.InCurrency(s.codec.cur); err != nil {
		return nil, err
	}
	row := toPropertyRow(p)
	children := struct {
		appraisals []appraisalRow
		documents  []documentRow
	}{row.Appraisals, row.Documents}
	row.Appraisals, row.Documents = nil, nil

	var updated *realty.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing propertyRow
		if err := tx.Select("id", "created_at").First(&existing, "id = ?", p.ID).Error; err != nil {
			return notFound(err, "property", p.ID)
		}
		row.CreatedAt = existing.CreatedAt
		before, err := s.property(tx, p.ID)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return fmt.Errorf("cannot update property %q: %w", p.ID, err)
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&appraisalRow{}).Error; err != nil {
			return fmt.Errorf("cannot replace appraisals of %q: %w", p.ID, err)
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&documentRow{}).Error; err != nil {
			return fmt.Errorf("cannot replace documents of %q: %w", p.ID, err)
		}
		if len(children.appraisals) > 0 {
			if err := tx.Create(&children.appraisals).Error; err != nil {
				return fmt.Errorf("cannot replace appraisals of %q: %w", p.ID, err)
			}
		}
		if len(children.documents) > 0 {
			if err := tx.Create(&children.documents).Error; err != nil {
				return fmt.Errorf("cannot replace documents of %q: %w", p.ID, err)
			}
		}
		if updated, err = s.property(tx, p.ID); err != nil {
			return err
		}
		for _, a := range realty.TasksCompleted(before, updated, s.now()) {
			if err := s.record(tx, a, actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddAppraisal stores a new appraisal of a property and returns the updated property.
func (s *Store) AddAppraisal(ctx context.Context, propertyID string, a realty.Appraisal) (*realty.Property, error) {
	if a.Date.IsZero() {
		return nil, fmt.Errorf("%w: appraisal has no date", realty.ErrInvalid)
	}
	if a.Value.IsNegative() {
		return nil, fmt.Errorf("%w: appraised value is negative: %v", realty.ErrInvalid, a.Value)
	}
	if err := realty.InCurrency(s.codec.cur, a.Value); err != nil {
		return nil, err
	}
	var updated *realty.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.property(tx, propertyID); err != nil {
			return err
		}
		row := toAppraisalRow(propertyID, a)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("cannot add appraisal to %q: %w", propertyID, err)
		}
		var err error
		updated, err = s.property(tx, propertyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddDocument stores a new document of a property, records the upload and
// returns the stored document.
func (s *Store) AddDocument(ctx context.Context, propertyID string, d realty.Document, actor string) (realty.Document, error) {
	var stored realty.Document
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.property(tx, propertyID)
		if err != nil {
			return err
		}
		row := toDocumentRow(propertyID, d)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("cannot add document to %q: %w", propertyID, err)
		}
		stored = s.codec.document(row)
		stored.PropertyName = p.Name
		return s.record(tx, realty.DocumentUploaded(p, stored, s.now()), actor)
	})
	if err != nil {
		return realty.Document{}, err
	}
	return stored, nil
}
