// Package vendorrepo provides data transfer objects and mapping functions for vendor persistence.
// This package implements the repository pattern for the vendor domain aggregate, handling
// the conversion between domain entities and database representations.
package vendorrepo

import (
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
// Indexed by city and rating to serve the broadcast candidate query.
type VendorDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:text;not null"`
	City           string    `gorm:"type:text;index"`
	Rating         float64   `gorm:"index"`
	ApprovalStatus string    `gorm:"type:text;index"`
	IsOnline       bool
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		City:           aggregate.City(),
		Rating:         aggregate.Rating(),
		ApprovalStatus: aggregate.ApprovalStatus().String(),
		IsOnline:       aggregate.IsOnline(),
	}
}

// toDomain converts a database DTO to a vendor domain aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	approvalStatus, err := vendor.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Name, dto.City, dto.Rating, approvalStatus, dto.IsOnline)
}
