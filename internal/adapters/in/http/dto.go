package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderItemRequest `json:"items"`
	Destination   GeoPointDTO        `json:"destination"`
	PaymentMethod string             `json:"payment_method"`
}

// OrderItemRequest is one purchased item in a checkout payload.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// GeoPointDTO is a latitude/longitude pair on the wire.
type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AssignCourierRequest names the courier to put in charge of an order.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// CourierActionRequest identifies the courier performing a lifecycle
// action on an order.
type CourierActionRequest struct {
	CourierID string `json:"courier_id"`
}

// ReportLocationRequest is one position sample from a courier device.
type ReportLocationRequest struct {
	CourierID  string      `json:"courier_id"`
	Point      GeoPointDTO `json:"point"`
	ReportedAt time.Time   `json:"reported_at"`
}

// ReportLocationResponse tells the device whether its sample was applied.
type ReportLocationResponse struct {
	Accepted bool `json:"accepted"`
}

// SetStatusRequest is an administrator status override payload.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// ZoneFeeRequest is one fee table edit.
type ZoneFeeRequest struct {
	Zone string  `json:"zone"`
	Fee  float64 `json:"fee"`
}

// ZoneFeeResponse is one row of the fee table.
type ZoneFeeResponse struct {
	Zone string  `json:"zone"`
	Fee  float64 `json:"fee"`
}

// OrderResponse is the detail view of an order on the wire.
type OrderResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerPhone  string              `json:"customer_phone"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	Destination    GeoPointDTO         `json:"destination"`
	DeliveryZone   string              `json:"delivery_zone"`
	DeliveryFee    float64             `json:"delivery_fee"`
	Subtotal       float64             `json:"subtotal"`
	Total          float64             `json:"total"`
	Status         string              `json:"status"`
	PaymentMethod  string              `json:"payment_method"`
	PaymentStatus  string              `json:"payment_status"`
	CourierID      *string             `json:"courier_id,omitempty"`
	LastKnownPoint *GeoPointDTO        `json:"last_known_point,omitempty"`
	LastReportedAt *time.Time          `json:"last_reported_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// OrderItemResponse is one item snapshot on the wire.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// OrderSummaryResponse is the list view of an order on the wire.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	DeliveryZone  string    `json:"delivery_zone"`
	DeliveryFee   float64   `json:"delivery_fee"`
	Subtotal      float64   `json:"subtotal"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CourierID     *string   `json:"courier_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// LocationResponse is the latest accepted courier position for an order.
type LocationResponse struct {
	OrderID    string      `json:"order_id"`
	Point      GeoPointDTO `json:"point"`
	ReportedAt time.Time   `json:"reported_at"`
}

// ActiveCourierResponse is one courier marker on the administrator live map.
type ActiveCourierResponse struct {
	CourierID  string      `json:"courier_id"`
	OrderID    string      `json:"order_id"`
	Point      GeoPointDTO `json:"point"`
	ReportedAt time.Time   `json:"reported_at"`
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	resp := OrderResponse{
		ID:            o.ID().String(),
		CustomerID:    o.CustomerID().String(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		Items:         items,
		Destination: GeoPointDTO{
			Lat: o.Destination().Lat(),
			Lng: o.Destination().Lng(),
		},
		DeliveryZone:  o.DeliveryZone(),
		DeliveryFee:   o.DeliveryFee(),
		Subtotal:      o.Subtotal(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod().String(),
		PaymentStatus: o.PaymentStatus().String(),
		CreatedAt:     o.CreatedAt(),
	}

	if courierID := o.Courier(); courierID != nil {
		id := courierID.String()
		resp.CourierID = &id
	}

	if tp := o.LastKnownLocation(); tp != nil {
		point := GeoPointDTO{Lat: tp.Point().Lat(), Lng: tp.Point().Lng()}
		at := tp.ReportedAt()
		resp.LastKnownPoint = &point
		resp.LastReportedAt = &at
	}

	return resp
}

func orderDetailsToResponse(details queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	resp := OrderResponse{
		ID:            details.ID.String(),
		CustomerID:    details.CustomerID.String(),
		CustomerName:  details.CustomerName,
		CustomerPhone: details.CustomerPhone,
		Items:         items,
		Destination: GeoPointDTO{
			Lat: details.Destination.Lat(),
			Lng: details.Destination.Lng(),
		},
		DeliveryZone:  details.DeliveryZone,
		DeliveryFee:   details.DeliveryFee,
		Subtotal:      details.Subtotal,
		Total:         details.Total,
		Status:        details.Status.String(),
		PaymentMethod: details.PaymentMethod.String(),
		PaymentStatus: details.PaymentStatus.String(),
		CreatedAt:     details.CreatedAt,
	}

	if details.CourierID != nil {
		id := details.CourierID.String()
		resp.CourierID = &id
	}

	if details.LastKnownPoint != nil {
		point := GeoPointDTO{Lat: details.LastKnownPoint.Lat(), Lng: details.LastKnownPoint.Lng()}
		resp.LastKnownPoint = &point
		resp.LastReportedAt = details.LastReportedAt
	}

	return resp
}

func summariesToResponse(summaries []queries.OrderSummaryResponse) []OrderSummaryResponse {
	result := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp := OrderSummaryResponse{
			ID:            summary.ID.String(),
			CustomerName:  summary.CustomerName,
			DeliveryZone:  summary.DeliveryZone,
			DeliveryFee:   summary.DeliveryFee,
			Subtotal:      summary.Subtotal,
			Total:         summary.Total,
			Status:        summary.Status.String(),
			PaymentStatus: summary.PaymentStatus.String(),
			CreatedAt:     summary.CreatedAt,
		}
		if summary.CourierID != nil {
			id := summary.CourierID.String()
			resp.CourierID = &id
		}
		result = append(result, resp)
	}
	return result
}
