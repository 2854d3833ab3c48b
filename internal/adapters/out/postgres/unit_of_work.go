// Package postgres provides the GORM-based Unit of Work used for event journal writes.
//
// Shipment state lives in memory; the database only receives the append-only
// journal. A unit of work wraps one flush so that a batch is stored entirely or
// not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.JournalRepository().AddBatch(ctx, entries); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction; goroutines must not share one.
package postgres

import (
	"context"

	"tracking/internal/adapters/out/postgres/journalrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		written: make([]kernel.UUID, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the ids of
// journal entries written through it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	written []kernel.UUID
}

// Begin starts a transaction. Calling Begin while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the active transaction.
// Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction and forgets entries written in it.
// Returns gorm.ErrInvalidTransaction when none is active, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.written = uow.written[:0]
	return err
}

// JournalRepository returns a repository bound to the active transaction,
// or to the connection pool when no transaction is active.
func (uow *GormUnitOfWork) JournalRepository() ports.JournalRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return journalrepo.NewGormJournalRepository(db, uow)
}

// TrackEntry is called by the journal repository for every stored entry.
func (uow *GormUnitOfWork) TrackEntry(id kernel.UUID) {
	uow.written = append(uow.written, id)
}

// Written returns the ids of entries stored through this unit of work.
func (uow *GormUnitOfWork) Written() []kernel.UUID {
	return append([]kernel.UUID(nil), uow.written...)
}

// Migrate creates or updates the journal schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&journalrepo.EntryDTO{})
}
