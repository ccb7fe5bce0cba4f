// Package services provides domain services that orchestrate business
// operations across multiple domain concepts in the dispatch core.
//
// The package includes:
//   - FeeResolver: a domain service that turns checkout coordinates into a
//     delivery zone and fee by consulting the geocoder and the zone fee table
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services
