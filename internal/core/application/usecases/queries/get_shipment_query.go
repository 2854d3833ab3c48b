// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return consistent snapshots and never mutate shipments.
package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves the current state of one shipment.
//
// Example:
//
//	query, err := NewGetShipmentQuery("ABC123")
//	if err != nil {
//	    return err
//	}
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load shipment: %w", err)
//	}
//	fmt.Printf("%s is %s at %s\n", snapshot.ID, snapshot.Status, snapshot.Location)
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID string

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for shipmentID.
func NewGetShipmentQuery(shipmentID string) (GetShipmentQuery, error) {
	query := GetShipmentQuery{guard: guard.NewConstructorGuard()}
	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier being looked up.
func (q GetShipmentQuery) ShipmentID() string {
	return q.shipmentID
}

func (q *GetShipmentQuery) setShipmentID(shipmentID string) error {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return errs.NewValueIsRequiredError("shipmentID")
	}

	q.shipmentID = shipmentID
	return nil
}
