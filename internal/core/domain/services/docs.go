// Package services contains domain services: business operations spanning
// multiple aggregates that do not belong to any single one.
//
// RecipientSelector decides which vendors receive a broadcast for an order:
// it filters out ineligible vendors, orders the rest by rating, and caps the
// fan-out size.
package services
