// Package kernel provides core domain primitives shared by the dispatch
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - GeoPoint: a value object for geographic coordinates (latitude and
//     longitude) with range validation
//
// These primitives enforce their own invariants so that domain objects
// built from them are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
