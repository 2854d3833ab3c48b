// Package shipmentrepo keeps shipment state machines in process memory.
// Shipments live for the lifetime of the process; nothing is persisted.
package shipmentrepo

import (
	"context"
	"sync"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"
)

// InMemoryShipmentRepository is an identifier-keyed map of shipments guarded by an RWMutex.
// The map lock covers lookup and insertion only; each shipment guards its own fields.
type InMemoryShipmentRepository struct {
	mu        sync.RWMutex
	shipments map[string]*shipment.Shipment
}

// NewInMemoryShipmentRepository returns an empty repository.
func NewInMemoryShipmentRepository() *InMemoryShipmentRepository {
	return &InMemoryShipmentRepository{
		shipments: make(map[string]*shipment.Shipment),
	}
}

// Add stores s under its id. An existing entry with the same id is replaced.
func (r *InMemoryShipmentRepository) Add(_ context.Context, s *shipment.Shipment) error {
	if s == nil {
		return errs.NewValueIsRequiredError("shipment")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.shipments[s.ID()] = s
	return nil
}

// Get returns the shipment stored under id.
func (r *InMemoryShipmentRepository) Get(_ context.Context, id string) (*shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return s, nil
}

// Count returns the number of stored shipments.
func (r *InMemoryShipmentRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.shipments)
}
