package shipment

import (
	"fmt"

	"tracking/internal/core/domain/model/kernel"
)

// Factory creates shipments from "created" records.
//
// A creation record must have exactly five fields:
//
//	timestamp, id, "created", category, expected delivery
//
// The tag must be the literal lower-case "created" and the category one of
// standard, express, overnight or bulk (any case). Category window violations
// are recorded as a note on the new shipment; they never prevent creation.
type Factory struct {
	formatter kernel.EpochFormatter
}

// NewFactory returns a Factory whose shipments format timestamps with formatter.
func NewFactory(formatter kernel.EpochFormatter) Factory {
	return Factory{formatter: formatter}
}

// Create validates r and returns the new shipment. On any error no shipment is returned.
func (f Factory) Create(r Record) (*Shipment, error) {
	if err := OperationCreated.ValidateRecord(r); err != nil {
		return nil, err
	}
	if r.Tag() != OperationCreated.String() {
		return nil, fmt.Errorf("%w: creation tag must be %q, got %q", ErrMalformedRecord, OperationCreated, r.Tag())
	}
	if r.ShipmentID() == "" {
		return nil, fmt.Errorf("%w: shipment identifier is empty", ErrMalformedRecord)
	}

	category, err := ParseCategory(r.Field(fieldFirstArg))
	if err != nil {
		return nil, err
	}

	advisory, err := category.Advisory(r.Timestamp(), r.Field(fieldFirstArg+1))
	if err != nil {
		return nil, err
	}

	s := newShipment(r, category, f.formatter)
	if advisory != "" {
		s.addNote(advisory)
	}

	return s, nil
}
