package cartrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	logger  *slog.Logger
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker, logger *slog.Logger) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
		logger:  logger.With("component", "cartrepo"),
	}
}

// Get loads the cart stored under the given identifier.
// A missing slot yields a fresh empty cart. An unparseable payload is
// discarded with a warning and likewise yields a fresh cart. A payload with
// legacy records is migrated and immediately re-persisted so the stored form
// converges on the current schema.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartSlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cart.NewCart(id)
		}
		return nil, err
	}

	items, dirty, err := itemsFromPayload(dto.Payload)
	if err != nil {
		r.logger.WarnContext(ctx, "Discarding unparseable cart payload",
			"cartId", id.String(), "error", err)
		return cart.NewCart(id)
	}

	aggregate, err := cart.RestoreCart(id, items)
	if err != nil {
		return nil, err
	}

	if dirty {
		if err = r.Save(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}

// Save serializes the cart's full line item collection and overwrites its
// slot, creating the row on first write.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// RemoveStale deletes every slot that has not been written since the given
// instant and returns the number of removed rows.
func (r *GormCartRepository) RemoveStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", before).
		Delete(&CartSlotDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
