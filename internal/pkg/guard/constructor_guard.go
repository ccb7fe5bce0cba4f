// Package guard provides a small helper for enforcing constructor usage on
// value objects and aggregates. A struct embeds a ConstructorGuard; only the
// package constructors set it, so a zero-value instance fails validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no caller-specific
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as constructed. The zero value is
// "not constructed"; NewConstructorGuard produces the constructed state.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Call it inside every constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
