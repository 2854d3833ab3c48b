// Package journal holds the audit entry written for every accepted event record.
package journal

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"
)

// Entry is one accepted event record as it was applied.
type Entry struct {
	ID         kernel.UUID
	ShipmentID string
	Operation  shipment.Operation
	Raw        string
	AcceptedAt time.Time
}

// NewEntry builds an entry for a record the dispatcher applied at acceptedAt.
func NewEntry(op shipment.Operation, r shipment.Record, acceptedAt time.Time) (Entry, error) {
	if r.ShipmentID() == "" {
		return Entry{}, errs.NewValueIsRequiredError("shipmentID")
	}
	if op == shipment.OperationUnknown {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("operation", errors.New("operation is unknown"))
	}

	return Entry{
		ID:         kernel.NewUUID(),
		ShipmentID: r.ShipmentID(),
		Operation:  op,
		Raw:        r.String(),
		AcceptedAt: acceptedAt.UTC(),
	}, nil
}

// Validate checks an entry rebuilt outside NewEntry.
func (e Entry) Validate() error {
	return errors.Join(
		e.ID.Validate(),
		requireShipmentID(e.ShipmentID),
	)
}

func requireShipmentID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	return nil
}
