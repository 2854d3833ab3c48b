package queries

import (
	"context"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
)

// GetShipmentQueryHandler reads shipment snapshots from the repository.
type GetShipmentQueryHandler struct {
	repository ports.ShipmentRepository
}

// NewGetShipmentQueryHandler creates a handler backed by repository.
func NewGetShipmentQueryHandler(repository ports.ShipmentRepository) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{repository: repository}
}

// Handle returns a snapshot of the requested shipment, or errs.ObjectNotFoundError.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (shipment.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return shipment.Snapshot{}, err
	}

	s, err := h.repository.Get(ctx, query.ShipmentID())
	if err != nil {
		return shipment.Snapshot{}, err
	}

	return s.Snapshot(), nil
}
