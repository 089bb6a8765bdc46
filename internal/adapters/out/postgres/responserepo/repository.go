package responserepo

import (
	"context"
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResponseRepository implements ResponseRepository using GORM.
type GormResponseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormResponseRepository creates a new GORM vendor response repository.
func NewGormResponseRepository(db *gorm.DB, tracker aggregateTracker) *GormResponseRepository {
	return &GormResponseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor response to the database.
func (r *GormResponseRepository) Add(ctx context.Context, aggregate *response.VendorResponse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vendor response to the database,
// typically to attach the review verdict.
func (r *GormResponseRepository) Update(ctx context.Context, aggregate *response.VendorResponse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ResponseDTO{}).
		Where("id = ?", dto.ID).
		Select("AdminApproved", "AdminResponse", "ReviewedAt", "Message").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vendor response by ID.
func (r *GormResponseRepository) Get(ctx context.Context, id kernel.UUID) (*response.VendorResponse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ResponseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor response", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all responses recorded for an order, newest first.
func (r *GormResponseRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*response.VendorResponse, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ResponseDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("submitted_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	responses := make([]*response.VendorResponse, 0, len(dtos))
	for _, dto := range dtos {
		resp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
