package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentMethod enumerates how an order is paid. The current scope has
// exactly one method: cash on delivery.
type PaymentMethod int

const (
	// UnknownMethod catches uninitialized PaymentMethod values.
	UnknownMethod PaymentMethod = iota

	// Cash is payment in cash on delivery.
	Cash
)

// Validate checks that the payment method is a defined value.
func (m PaymentMethod) Validate() error {
	if m != Cash {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if m == Cash {
		return "Cash"
	}
	return "Unknown"
}

// PaymentMethodFromString parses a payment method name as produced by String.
func PaymentMethodFromString(name string) (PaymentMethod, error) {
	if name == "Cash" {
		return Cash, nil
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", name))
}

// PaymentStatus tracks whether the order has been paid. A cash order is
// collected on delivery, so Paid is only reachable from Delivered.
type PaymentStatus int

const (
	// UnknownPayment catches uninitialized PaymentStatus values.
	UnknownPayment PaymentStatus = iota

	// AwaitingPayment is the initial payment status of every order.
	AwaitingPayment

	// Paid indicates an administrator confirmed the cash was collected.
	Paid
)

// Validate checks that the payment status is a defined value.
func (s PaymentStatus) Validate() error {
	if s != AwaitingPayment && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	switch s {
	case AwaitingPayment:
		return "AwaitingPayment"
	case Paid:
		return "Paid"
	default:
		return "Unknown"
	}
}
