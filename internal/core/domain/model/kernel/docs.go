// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers, WGS84 geo points with great-circle distance,
// normalized CPF numbers, and the constructor guard that protects value
// objects from zero-value construction.
//
// Everything in this package is immutable and safe for concurrent use.
package kernel
