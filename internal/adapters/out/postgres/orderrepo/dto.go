// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The subtotal and total are stored as written at placement; the domain
// recomputes them on restore from the item snapshots, so the stored values
// exist for reporting queries only.
type OrderDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	CustomerName   string      `gorm:"type:varchar(255);not null"`
	CustomerPhone  string      `gorm:"type:varchar(64);not null"`
	Items          []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Destination    GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	DeliveryZone   string      `gorm:"type:varchar(255);not null"`
	DeliveryFee    float64     `gorm:"not null"`
	Subtotal       float64     `gorm:"not null"`
	Total          float64     `gorm:"not null"`
	Status         int         `gorm:"not null;index"`
	CourierID      *uuid.UUID  `gorm:"type:uuid;index"`
	PaymentMethod  int         `gorm:"not null"`
	PaymentStatus  int         `gorm:"not null"`
	LastLat        *float64    `gorm:"type:double precision"`
	LastLng        *float64    `gorm:"type:double precision"`
	LastReportedAt *time.Time
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// ItemDTO represents one purchased item snapshot within an order.
// The unit price is the price at placement, not the catalog price.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice float64   `gorm:"not null"`
	Quantity  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for item snapshots.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var lastLat, lastLng *float64
	var lastReportedAt *time.Time
	if tp := aggregate.LastKnownLocation(); tp != nil {
		lat := tp.Point().Lat()
		lng := tp.Point().Lng()
		at := tp.ReportedAt()
		lastLat, lastLng, lastReportedAt = &lat, &lng, &at
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		Items:         items,
		Destination: GeoPointDTO{
			Lat: aggregate.Destination().Lat(),
			Lng: aggregate.Destination().Lng(),
		},
		DeliveryZone:   aggregate.DeliveryZone(),
		DeliveryFee:    aggregate.DeliveryFee(),
		Subtotal:       aggregate.Subtotal(),
		Total:          aggregate.Total(),
		Status:         int(aggregate.Status()),
		CourierID:      courierID,
		PaymentMethod:  int(aggregate.PaymentMethod()),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		LastLat:        lastLat,
		LastLng:        lastLng,
		LastReportedAt: lastReportedAt,
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including courier assignment, payment
// state and the last known location using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	destination, err := kernel.NewGeoPoint(dto.Destination.Lat, dto.Destination.Lng)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var lastKnown *order.TrackPoint
	if dto.LastLat != nil && dto.LastLng != nil && dto.LastReportedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLng)
		if pointErr != nil {
			return nil, pointErr
		}
		tp, tpErr := order.NewTrackPoint(point, *dto.LastReportedAt)
		if tpErr != nil {
			return nil, tpErr
		}
		lastKnown = &tp
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		dto.CustomerPhone,
		items,
		destination,
		dto.DeliveryZone,
		dto.DeliveryFee,
		order.Status(dto.Status),
		courierID,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		lastKnown,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Name, dto.UnitPrice, dto.Quantity)
}
