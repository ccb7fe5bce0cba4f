package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidState is returned when the requested transition is not
	// legal from the order's current status.
	ErrInvalidState = errors.New("transition is not allowed from current status")

	// ErrNotAssigned is returned when a courier command arrives from
	// someone other than the order's assigned courier.
	ErrNotAssigned = errors.New("caller is not the assigned courier")

	// ErrNotDelivered is returned when payment is marked on an order that
	// has not been delivered yet.
	ErrNotDelivered = errors.New("order is not delivered")
)

// Order is the aggregate root for a customer order moving through
// dispatch: checkout, courier assignment, delivery, cash collection.
//
// Invariants:
//   - id, customer identity, items, destination, delivery zone, delivery
//     fee, subtotal, total, payment method, and createdAt are fixed at
//     creation for the order's entire lifetime
//   - total always equals subtotal + deliveryFee
//   - Paid implies Delivered
//   - the last known location is written only while the order is EnRoute;
//     once the status leaves EnRoute the point is retained for history
//     but never updated again
//   - once a courier is assigned, only that courier's delivery commands
//     are accepted
//
// All fields are private; every mutation goes through a transition method
// that enforces the state machine documented on Status.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	customerName  string
	customerPhone string
	items         []Item
	destination   kernel.GeoPoint
	deliveryZone  string
	deliveryFee   float64
	subtotal      float64
	total         float64
	status        Status
	courierID     *kernel.UUID
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	lastKnown     *TrackPoint
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status awaiting payment, with no
// courier and no location history. The delivery fee must already be
// resolved by the caller; the subtotal and total are computed here from
// the item snapshots and are immutable afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerPhone string,
	items []Item,
	destination kernel.GeoPoint,
	deliveryZone string,
	deliveryFee float64,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: AwaitingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName, customerPhone),
		o.setItems(items),
		o.setDestination(destination),
		o.setDeliveryZone(deliveryZone),
		o.setDeliveryFee(deliveryFee),
		o.setPaymentMethod(paymentMethod),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.subtotal = 0
	for _, item := range o.items {
		o.subtotal += item.Subtotal()
	}
	o.total = o.subtotal + o.deliveryFee

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without replaying its
// history. The stored status, courier assignment, payment status, and last
// known location are applied after the creation-time fields pass the same
// validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerPhone string,
	items []Item,
	destination kernel.GeoPoint,
	deliveryZone string,
	deliveryFee float64,
	status Status,
	courierID *kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	lastKnown *TrackPoint,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, customerName, customerPhone, items,
		destination, deliveryZone, deliveryFee, paymentMethod, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}
	if paymentStatus == Paid && status != Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("order is %s but marked paid", status))
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}
	if lastKnown != nil {
		if err = lastKnown.Validate(); err != nil {
			return nil, err
		}
		tp := *lastKnown
		o.lastKnown = &tp
	}

	o.status = status
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the contact name captured at checkout.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the contact phone captured at checkout.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Items returns a copy of the checkout item snapshots.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Destination returns the delivery destination captured at checkout.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// DeliveryZone returns the zone name the fee was resolved against.
func (o *Order) DeliveryZone() string {
	return o.deliveryZone
}

// DeliveryFee returns the fee frozen at creation.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// Subtotal returns the sum of the item subtotals, frozen at creation.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// Total returns subtotal + deliveryFee, frozen at creation.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// LastKnownLocation returns the most recent accepted courier report, or
// nil if the courier never reported on this order.
func (o *Order) LastKnownLocation() *TrackPoint {
	return o.lastKnown
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign assigns or reassigns the order to a courier. Valid only while the
// order is Pending or EnRoute; assignment does not itself change the
// status. Terminal orders reject assignment with ErrInvalidState.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != Pending && o.status != EnRoute {
		return fmt.Errorf("%w: cannot assign courier while %s", ErrInvalidState, o.status)
	}

	o.courierID = &courierID
	return nil
}

// StartDelivery moves the order from Pending to EnRoute. Only the assigned
// courier may start the delivery: a non-assigned caller gets
// ErrNotAssigned, any status other than Pending gets ErrInvalidState.
func (o *Order) StartDelivery(courierID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot start delivery of a %s order", ErrInvalidState, o.status)
	}
	if err := o.requireAssignedCourier(courierID); err != nil {
		return err
	}
	if o.status != Pending {
		return fmt.Errorf("%w: cannot start delivery while %s", ErrInvalidState, o.status)
	}

	o.status = EnRoute
	return nil
}

// ReportLocation records a courier position report. Accepted only while
// the order is EnRoute and the caller is the assigned courier. A report
// whose timestamp is not newer than the stored one is dropped silently:
// the method returns (false, nil) and the stored point is unchanged.
// Late-arriving stale reports are expected under mobile networks and are
// not an error.
func (o *Order) ReportLocation(courierID kernel.UUID, point TrackPoint) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := errors.Join(courierID.Validate(), point.Validate()); err != nil {
		return false, err
	}
	if o.status != EnRoute {
		return false, fmt.Errorf("%w: cannot report location while %s", ErrInvalidState, o.status)
	}
	if err := o.requireAssignedCourier(courierID); err != nil {
		return false, err
	}
	if o.lastKnown != nil && !point.IsNewerThan(*o.lastKnown) {
		return false, nil
	}

	o.lastKnown = &point
	return true, nil
}

// FinishDelivery moves the order from EnRoute to Delivered. Only the
// assigned courier may finish the delivery; an order no longer assigned to
// the caller is rejected with ErrNotAssigned, never force-completed.
func (o *Order) FinishDelivery(courierID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cannot finish delivery of a %s order", ErrInvalidState, o.status)
	}
	if err := o.requireAssignedCourier(courierID); err != nil {
		return err
	}
	if o.status != EnRoute {
		return fmt.Errorf("%w: cannot finish delivery while %s", ErrInvalidState, o.status)
	}

	o.status = Delivered
	return nil
}

// OverrideStatus is the administrator correction path. It may move the
// order from any non-terminal status to any valid status, including
// Cancelled, bypassing the courier guards. Delivered and Cancelled stay
// strictly terminal even for administrators.
func (o *Order) OverrideStatus(newStatus Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidState, o.status)
	}

	o.status = newStatus
	return nil
}

// MarkPaid records that the cash was collected. Valid only once the order
// is Delivered; any other status is rejected with ErrNotDelivered. Marking
// an already paid order is an idempotent no-op.
func (o *Order) MarkPaid() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.paymentStatus == Paid {
		return nil
	}
	if o.status != Delivered {
		return fmt.Errorf("%w: order is %s", ErrNotDelivered, o.status)
	}

	o.paymentStatus = Paid
	return nil
}

func (o *Order) requireAssignedCourier(courierID kernel.UUID) error {
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return fmt.Errorf("%w: courier %s", ErrNotAssigned, courierID)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, name string, phone string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	o.customerID = customerID
	o.customerName = name
	o.customerPhone = phone
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setDeliveryZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("delivery zone")
	}
	o.deliveryZone = zone
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%g is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
