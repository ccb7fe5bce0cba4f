package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order's detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError for an
// unknown order id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_name,
			customer_phone,
			destination_lat,
			destination_lng,
			delivery_zone,
			delivery_fee,
			subtotal,
			total,
			status,
			payment_method,
			payment_status,
			courier_id,
			last_lat,
			last_lng,
			last_reported_at,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var courierID *uuid.UUID
	var destLat, destLng float64
	var lastLat, lastLng *float64
	var lastReportedAt *time.Time
	var status, paymentMethod, paymentStatus int

	err := row.Scan(
		&id,
		&customerID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&destLat,
		&destLng,
		&resp.DeliveryZone,
		&resp.DeliveryFee,
		&resp.Subtotal,
		&resp.Total,
		&status,
		&paymentMethod,
		&paymentStatus,
		&courierID,
		&lastLat,
		&lastLng,
		&lastReportedAt,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Destination, err = kernel.NewGeoPoint(destLat, destLng); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
		if cErr != nil {
			return GetOrderQueryResponse{}, cErr
		}
		resp.CourierID = &cID
	}
	if lastLat != nil && lastLng != nil && lastReportedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*lastLat, *lastLng)
		if pointErr != nil {
			return GetOrderQueryResponse{}, pointErr
		}
		resp.LastKnownPoint = &point
		resp.LastReportedAt = lastReportedAt
	}

	resp.Status = order.Status(status)
	resp.PaymentMethod = order.PaymentMethod(paymentMethod)
	resp.PaymentStatus = order.PaymentStatus(paymentStatus)

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)

	for rows.Next() {
		var item OrderItemResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
