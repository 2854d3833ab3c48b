// Package ports defines the contracts between the tracking core and its adapters.
// These interfaces establish dependency inversion so the domain and application
// layers never import concrete storage, transport or metrics code.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/shipment"
)

// ShipmentRepository is the identifier-keyed collection of shipment state machines.
// It is the single source of truth for whether a shipment exists.
type ShipmentRepository interface {
	// Add stores the shipment, replacing any existing shipment with the same id.
	// A nil shipment is rejected with errs.ValueIsRequiredError.
	Add(ctx context.Context, s *shipment.Shipment) error

	// Get returns the shipment or errs.ObjectNotFoundError. It has no side effects.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// Count returns how many shipments are held.
	Count(ctx context.Context) int
}
