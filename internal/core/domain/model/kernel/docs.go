// Package kernel provides shared value objects used across all domain
// aggregates: UUID identity and Price amounts.
//
// Both types are immutable and must be created through their constructor
// functions; zero values fail Validate. Price wraps a money amount in the
// marketplace's settlement currency and is the single representation of
// order prices and vendor counter-offers throughout the core.
package kernel
