package services

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
)

// OperationDispatcher maps an event record's operation tag to the action it performs.
//
// Business rules:
//   - Tags are matched case-insensitively against the closed operation set;
//     anything else fails with shipment.ErrUnknownOperation
//   - "created" goes through the Factory and then the repository
//   - Every other tag requires the target shipment to exist
//     (errs.ObjectNotFoundError otherwise)
//   - A failed dispatch leaves the repository and every shipment untouched
//
// Example usage:
//
//	dispatcher := services.NewOperationDispatcher(repo, shipment.NewFactory(formatter))
//	rec, _ := shipment.ParseRecord("1690000000000,ABC123,delivered")
//	op, err := dispatcher.Dispatch(ctx, rec)
type OperationDispatcher struct {
	repository ports.ShipmentRepository
	factory    shipment.Factory
}

// NewOperationDispatcher creates a dispatcher bound to repository and factory.
func NewOperationDispatcher(repository ports.ShipmentRepository, factory shipment.Factory) OperationDispatcher {
	return OperationDispatcher{
		repository: repository,
		factory:    factory,
	}
}

// Dispatch applies r and returns the operation it resolved to.
func (d OperationDispatcher) Dispatch(ctx context.Context, r shipment.Record) (shipment.Operation, error) {
	if err := r.Require(3); err != nil {
		return shipment.OperationUnknown, err
	}

	op, err := shipment.ParseOperation(r.Tag())
	if err != nil {
		return shipment.OperationUnknown, err
	}

	if op == shipment.OperationCreated {
		return op, d.create(ctx, r)
	}

	target, err := d.repository.Get(ctx, r.ShipmentID())
	if err != nil {
		return op, err
	}

	return op, apply(target, op, r)
}

func (d OperationDispatcher) create(ctx context.Context, r shipment.Record) error {
	created, err := d.factory.Create(r)
	if err != nil {
		return err
	}

	return d.repository.Add(ctx, created)
}

func apply(target *shipment.Shipment, op shipment.Operation, r shipment.Record) error {
	switch op {
	case shipment.OperationShipped:
		return target.Shipped(r)
	case shipment.OperationLocation:
		return target.Location(r)
	case shipment.OperationDelivered:
		return target.Delivered(r)
	case shipment.OperationDelayed:
		return target.Delayed(r)
	case shipment.OperationLost:
		return target.Lost(r)
	case shipment.OperationCanceled:
		return target.Canceled(r)
	case shipment.OperationNote:
		return target.Note(r)
	case shipment.OperationUnknown, shipment.OperationCreated:
	}
	return fmt.Errorf("%w: %s cannot be applied to an existing shipment", shipment.ErrUnknownOperation, op)
}
