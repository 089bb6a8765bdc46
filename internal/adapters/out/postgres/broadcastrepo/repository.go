package broadcastrepo

import (
	"context"
	"errors"
	"time"

	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBroadcastRepository implements BroadcastRepository using GORM.
type GormBroadcastRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBroadcastRepository creates a new GORM broadcast repository.
func NewGormBroadcastRepository(db *gorm.DB, tracker aggregateTracker) *GormBroadcastRepository {
	return &GormBroadcastRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new broadcast to the database. The insert carries
// ON CONFLICT DO NOTHING on the unique (order_id, vendor_id) index, so a
// second offer to the same vendor is skipped without raising a constraint
// violation that would abort the surrounding transaction. A skipped row
// surfaces as broadcast.ErrDuplicateBroadcast.
func (r *GormBroadcastRepository) Add(ctx context.Context, aggregate *broadcast.Broadcast) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "vendor_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return broadcast.ErrDuplicateBroadcast
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing broadcast to the database.
func (r *GormBroadcastRepository) Update(ctx context.Context, aggregate *broadcast.Broadcast) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BroadcastDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "BroadcastAt", "ExpiresAt", "ResponseAt").
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

// Get retrieves a broadcast by ID.
func (r *GormBroadcastRepository) Get(ctx context.Context, id kernel.UUID) (*broadcast.Broadcast, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BroadcastDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("broadcast", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all broadcasts sent for an order, most recent first.
func (r *GormBroadcastRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*broadcast.Broadcast, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BroadcastDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("broadcast_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	broadcasts := make([]*broadcast.Broadcast, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, b)
	}

	return broadcasts, nil
}

// ExpireAllPending closes every pending broadcast whose response window ended
// before now, in a single bulk update. Returns the number of rows expired.
func (r *GormBroadcastRepository) ExpireAllPending(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&BroadcastDTO{}).
		Where("status = ? AND expires_at < ?", broadcast.StatusPending.String(), now).
		Update("status", broadcast.StatusExpired.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
