// Package domain contains the core domain model for the book
// recommendation service.
//
// This package defines:
//   - Entities: Book and User aggregates with validated construction
//     and mutators that re-check invariants on every call
//   - GenreSet: the ordered, case-insensitive-unique tag collection
//     shared by book genres and user preferences
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities validate their own invariants; callers never mutate
//     invariant-bearing fields directly
package domain
