// Package journalrepo persists event journal entries with GORM.
// Rows are insert-only; nothing in the service reads them back to rebuild shipments.
package journalrepo

import (
	"time"

	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// EntryDTO is the event_journal row.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID string    `gorm:"type:varchar(255);not null;index"`
	Operation  string    `gorm:"type:varchar(32);not null"`
	Raw        string    `gorm:"type:text;not null"`
	AcceptedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming.
func (EntryDTO) TableName() string {
	return "event_journal"
}

func fromDomain(entry journal.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID.Bytes(),
		ShipmentID: entry.ShipmentID,
		Operation:  entry.Operation.String(),
		Raw:        entry.Raw,
		AcceptedAt: entry.AcceptedAt,
	}
}

func toDomain(dto EntryDTO) (journal.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return journal.Entry{}, err
	}

	op, err := shipment.ParseOperation(dto.Operation)
	if err != nil {
		return journal.Entry{}, err
	}

	return journal.Entry{
		ID:         id,
		ShipmentID: dto.ShipmentID,
		Operation:  op,
		Raw:        dto.Raw,
		AcceptedAt: dto.AcceptedAt.UTC(),
	}, nil
}
