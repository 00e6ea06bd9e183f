// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. A unit of work holds a single database transaction spanning the
// repositories it hands out, and tracks the aggregates modified within it.
package postgres

import (
	"context"
	"log/slog"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The logger is handed to the repositories for payload warnings.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction for one business
// operation. Repositories obtained before Begin run against the shared
// connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction.
// Calling Begin again on an active instance is a no-op, not a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CartRepository provides cart persistence operations within the unit of
// work. Operations execute inside the current transaction if one is active,
// otherwise against the shared connection.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cartrepo.NewGormCartRepository(db, uow, uow.logger)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
