package zonefeerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/pricing"
)

// GormZoneFeeRepository implements ZoneFeeRepository using GORM.
type GormZoneFeeRepository struct {
	db *gorm.DB
}

// NewGormZoneFeeRepository creates a new GORM zone fee repository.
func NewGormZoneFeeRepository(db *gorm.DB) *GormZoneFeeRepository {
	return &GormZoneFeeRepository{db: db}
}

// Upsert creates or replaces the row for the entry's zone.
func (r *GormZoneFeeRepository) Upsert(ctx context.Context, entry pricing.ZoneFee) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "zone"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "fee"}),
		}).
		Create(&dto).Error
}

// FeeForZone looks up a zone's fee by case-insensitive exact match.
// A missing row is (0, false, nil), not an error.
func (r *GormZoneFeeRepository) FeeForZone(ctx context.Context, zone string) (float64, bool, error) {
	var dto ZoneFeeDTO
	err := r.db.WithContext(ctx).First(&dto, "zone = ?", pricing.NormalizeZone(zone)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return dto.Fee, true, nil
}

// GetAll returns every row of the table sorted by zone.
func (r *GormZoneFeeRepository) GetAll(ctx context.Context) ([]pricing.ZoneFee, error) {
	var dtos []ZoneFeeDTO
	if err := r.db.WithContext(ctx).Order("zone").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]pricing.ZoneFee, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
