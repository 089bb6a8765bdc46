// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by status and vendor assignment.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ServiceType      string     `gorm:"type:text;not null"`
	ApproxPrice      *int64     `gorm:"type:bigint"`
	AssignedVendorID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:text;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Prices are stored as minor currency units; the status as its display name.
func fromDomain(aggregate *order.Order) OrderDTO {
	var approxPrice *int64
	if price := aggregate.ApproxPrice(); price != nil {
		amount := price.Amount()
		approxPrice = &amount
	}

	var vendorID *uuid.UUID
	if id := aggregate.AssignedVendor(); id != nil {
		raw := id.Bytes()
		vendorID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ServiceType:      aggregate.ServiceType(),
		ApproxPrice:      approxPrice,
		AssignedVendorID: vendorID,
		Status:           aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and vendor assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var approxPrice *kernel.Price
	if dto.ApproxPrice != nil {
		price, priceErr := kernel.NewPrice(*dto.ApproxPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		approxPrice = &price
	}

	var vendorID *kernel.UUID
	if dto.AssignedVendorID != nil {
		vID, vendorErr := kernel.UUIDFromBytes((*dto.AssignedVendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorID = &vID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.ServiceType, approxPrice, status, vendorID)
}
