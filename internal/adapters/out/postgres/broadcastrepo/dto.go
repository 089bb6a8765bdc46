// Package broadcastrepo provides data transfer objects and mapping functions for broadcast persistence.
// This package implements the repository pattern for the broadcast domain aggregate, handling
// the conversion between domain entities and database representations.
package broadcastrepo

import (
	"time"

	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BroadcastDTO represents the database structure for persisting broadcast aggregates.
// The composite unique index on (order_id, vendor_id) enforces at the storage
// level that a vendor is offered each order at most once.
type BroadcastDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_vendor"`
	VendorID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_vendor"`
	Status      string    `gorm:"type:text;index"`
	BroadcastAt time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	ResponseAt  *time.Time
}

// TableName specifies the database table name for broadcast entities.
func (BroadcastDTO) TableName() string {
	return "order_broadcasts"
}

// fromDomain converts a broadcast domain aggregate to its database representation.
func fromDomain(aggregate *broadcast.Broadcast) BroadcastDTO {
	return BroadcastDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		Status:      aggregate.Status().String(),
		BroadcastAt: aggregate.BroadcastAt(),
		ExpiresAt:   aggregate.ExpiresAt(),
		ResponseAt:  aggregate.ResponseAt(),
	}
}

// toDomain converts a database DTO to a broadcast domain aggregate.
func toDomain(dto BroadcastDTO) (*broadcast.Broadcast, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	status, err := broadcast.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return broadcast.RestoreBroadcast(id, orderID, vendorID, status, dto.BroadcastAt, dto.ExpiresAt, dto.ResponseAt)
}
