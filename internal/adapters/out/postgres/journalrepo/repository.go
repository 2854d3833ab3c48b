package journalrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// insertBatchSize caps the rows per INSERT statement.
const insertBatchSize = 500

// GormJournalRepository implements ports.JournalRepository using GORM.
type GormJournalRepository struct {
	db      *gorm.DB
	tracker entryTracker
}

// entryTracker is told about every entry written through the repository.
type entryTracker interface {
	TrackEntry(id kernel.UUID)
}

// NewGormJournalRepository creates a repository writing through db.
func NewGormJournalRepository(db *gorm.DB, tracker entryTracker) *GormJournalRepository {
	return &GormJournalRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch inserts entries in order.
func (r *GormJournalRepository) AddBatch(ctx context.Context, entries []journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error; err != nil {
		return err
	}

	for _, entry := range entries {
		r.tracker.TrackEntry(entry.ID)
	}
	return nil
}

// Get loads a single entry by id.
func (r *GormJournalRepository) Get(ctx context.Context, id kernel.UUID) (journal.Entry, error) {
	if err := id.Validate(); err != nil {
		return journal.Entry{}, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return journal.Entry{}, errs.NewObjectNotFoundError("journal entry", id.String())
		}
		return journal.Entry{}, err
	}

	return toDomain(dto)
}
