// Package order contains the Order aggregate and its supporting value
// objects: lifecycle Status, payment types, item snapshots, and courier
// track points.
//
// The Order aggregate is the authoritative representation of a customer
// order moving through dispatch. Financial fields (items, delivery fee,
// subtotal, total) are frozen at creation; only status, courier
// assignment, payment status, and the last known courier location change
// afterwards, and every change goes through a guarded transition method.
package order
