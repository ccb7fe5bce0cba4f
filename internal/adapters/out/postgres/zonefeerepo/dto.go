// Package zonefeerepo persists the per-zone delivery fee table. Rows are
// keyed by the normalized zone name so fee lookups are case-insensitive,
// while the display name keeps whatever casing the administrator typed.
package zonefeerepo

import (
	"dispatch/internal/core/domain/model/pricing"
)

// ZoneFeeDTO represents one row of the delivery fee table.
type ZoneFeeDTO struct {
	Zone        string  `gorm:"type:varchar(255);primaryKey"`
	DisplayName string  `gorm:"type:varchar(255);not null"`
	Fee         float64 `gorm:"not null"`
}

// TableName specifies the database table name for zone fee entries.
func (ZoneFeeDTO) TableName() string {
	return "zone_fees"
}

func fromDomain(entry pricing.ZoneFee) ZoneFeeDTO {
	return ZoneFeeDTO{
		Zone:        entry.NormalizedZone(),
		DisplayName: entry.Zone(),
		Fee:         entry.Fee(),
	}
}

func toDomain(dto ZoneFeeDTO) (pricing.ZoneFee, error) {
	return pricing.NewZoneFee(dto.DisplayName, dto.Fee)
}
