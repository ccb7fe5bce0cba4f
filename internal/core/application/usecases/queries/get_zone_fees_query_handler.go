package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetZoneFeesQueryHandler retrieves the delivery fee table.
type GetZoneFeesQueryHandler struct {
	db *gorm.DB
}

// NewGetZoneFeesQueryHandler creates a handler for fee table queries.
func NewGetZoneFeesQueryHandler(db *gorm.DB) GetZoneFeesQueryHandler {
	return GetZoneFeesQueryHandler{db: db}
}

// Handle executes the query. Rows carry the display casing the
// administrator entered, sorted by zone.
func (h GetZoneFeesQueryHandler) Handle(
	ctx context.Context,
	query GetZoneFeesQuery,
) ([]GetZoneFeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			display_name,
			fee
		FROM zone_fees
		ORDER BY zone
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := make([]GetZoneFeesQueryResponse, 0)

	for rows.Next() {
		var resp GetZoneFeesQueryResponse
		if err = rows.Scan(&resp.Zone, &resp.Fee); err != nil {
			return nil, err
		}
		fees = append(fees, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}
