// Package responserepo provides data transfer objects and mapping functions for vendor response persistence.
// This package implements the repository pattern for the vendor response domain aggregate,
// handling the conversion between domain entities and database representations.
package responserepo

import (
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"

	"github.com/google/uuid"
)

// ResponseDTO represents the database structure for persisting vendor responses.
// The review verdict columns stay NULL until an admin acts, which is what the
// pending review queue filters on.
type ResponseDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BroadcastID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	VendorID      uuid.UUID `gorm:"type:uuid;index"`
	ResponseType  string    `gorm:"type:text;not null"`
	ProposedPrice *int64    `gorm:"type:bigint"`
	OriginalPrice *int64    `gorm:"type:bigint"`
	Message       string    `gorm:"type:text"`
	SubmittedAt   time.Time `gorm:"not null;index"`
	AdminApproved *bool
	AdminResponse string `gorm:"type:text"`
	ReviewedAt    *time.Time
}

// TableName specifies the database table name for vendor response entities.
func (ResponseDTO) TableName() string {
	return "vendor_responses"
}

// fromDomain converts a vendor response domain aggregate to its database representation.
func fromDomain(aggregate *response.VendorResponse) ResponseDTO {
	var proposedPrice *int64
	if price := aggregate.ProposedPrice(); price != nil {
		amount := price.Amount()
		proposedPrice = &amount
	}

	var originalPrice *int64
	if price := aggregate.OriginalPrice(); price != nil {
		amount := price.Amount()
		originalPrice = &amount
	}

	return ResponseDTO{
		ID:            aggregate.ID().Bytes(),
		BroadcastID:   aggregate.BroadcastID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		VendorID:      aggregate.VendorID().Bytes(),
		ResponseType:  aggregate.ResponseType().String(),
		ProposedPrice: proposedPrice,
		OriginalPrice: originalPrice,
		Message:       aggregate.Message(),
		SubmittedAt:   aggregate.SubmittedAt(),
		AdminApproved: aggregate.AdminApproved(),
		AdminResponse: aggregate.AdminResponse(),
		ReviewedAt:    aggregate.ReviewedAt(),
	}
}

// toDomain converts a database DTO to a vendor response domain aggregate.
func toDomain(dto ResponseDTO) (*response.VendorResponse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	broadcastID, err := kernel.UUIDFromBytes(dto.BroadcastID[:])
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

	responseType, err := response.TypeFromString(dto.ResponseType)
	if err != nil {
		return nil, err
	}

	var proposedPrice *kernel.Price
	if dto.ProposedPrice != nil {
		price, priceErr := kernel.NewPrice(*dto.ProposedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		proposedPrice = &price
	}

	var originalPrice *kernel.Price
	if dto.OriginalPrice != nil {
		price, priceErr := kernel.NewPrice(*dto.OriginalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		originalPrice = &price
	}

	return response.RestoreVendorResponse(
		id, broadcastID, orderID, vendorID,
		responseType, proposedPrice, originalPrice, dto.Message, dto.SubmittedAt,
		dto.AdminApproved, dto.AdminResponse, dto.ReviewedAt,
	)
}
