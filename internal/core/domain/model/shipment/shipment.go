package shipment

import (
	"errors"
	"fmt"
	"sync"

	"tracking/internal/core/domain/model/kernel"
)

const (
	OriginLocation      = "Origin Warehouse"
	DeliveredLocation   = "Delivered"
	UnknownLocation     = "Unknown"
	NotApplicable       = "N/A"
	DeliveryComplete    = "Delivery Complete"
	createdUpdatePrefix = "Created on "
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created by a Factory.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via Factory.Create")

// Shipment is the state machine for one tracked shipment.
//
// Shipment follows these invariants:
//   - id and category are fixed at creation
//   - status is always one of the reportable statuses
//   - updates and notes are append-only; Snapshot reports them most-recent-first
//   - a transition that rejects its record changes nothing
//
// All methods are safe for concurrent use. Transitions hold the write lock for
// their whole duration, so transitions on one shipment apply one at a time in
// the order they acquire it; Snapshot copies every field under a single read lock.
type Shipment struct {
	mu sync.RWMutex

	id           string
	category     Category
	categoryName string

	status           Status
	location         string
	expectedDelivery string

	// updates and notes are stored oldest-first
	updates []string
	notes   []string

	formatter     kernel.EpochFormatter
	isConstructed bool
}

func newShipment(r Record, category Category, formatter kernel.EpochFormatter) *Shipment {
	s := &Shipment{
		id:            r.ShipmentID(),
		category:      category,
		categoryName:  r.Field(fieldFirstArg),
		status:        Created,
		location:      OriginLocation,
		formatter:     formatter,
		isConstructed: true,
	}
	s.expectedDelivery = formatter.Format(r.Field(fieldFirstArg + 1))
	s.updates = append(s.updates, createdUpdatePrefix+formatter.Format(r.Timestamp()))
	return s
}

// Validate reports whether the shipment was built by a Factory.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() string {
	return s.id
}

// Category returns the category the shipment was created with.
func (s *Shipment) Category() Category {
	return s.category
}

// Status returns the current status.
func (s *Shipment) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Shipped marks the shipment as shipped with a new expected delivery (field 3).
func (s *Shipment) Shipped(r Record) error {
	return s.transition(OperationShipped, r, func(at string) {
		s.status = Shipped
		s.expectedDelivery = s.formatter.Format(r.Field(fieldFirstArg))
		s.addUpdate(fmt.Sprintf("Shipped on %s. Expected delivery on %s", at, s.expectedDelivery))
	})
}

// Location records arrival at the location named in field 3.
func (s *Shipment) Location(r Record) error {
	return s.transition(OperationLocation, r, func(at string) {
		s.status = ArrivedAtNewLocation
		s.location = r.Field(fieldFirstArg)
		s.addUpdate(fmt.Sprintf("New shipment location: %s on %s", s.location, at))
	})
}

// Delivered marks the shipment as delivered.
func (s *Shipment) Delivered(r Record) error {
	return s.transition(OperationDelivered, r, func(at string) {
		s.status = Delivered
		s.location = DeliveredLocation
		s.expectedDelivery = DeliveryComplete
		s.addUpdate("Delivered at " + at)
	})
}

// Delayed marks the shipment as delayed with a new expected delivery (field 3).
func (s *Shipment) Delayed(r Record) error {
	return s.transition(OperationDelayed, r, func(at string) {
		s.status = Delayed
		s.expectedDelivery = s.formatter.Format(r.Field(fieldFirstArg))
		s.addUpdate(fmt.Sprintf("Delayed on %s, new expected delivery date %s", at, s.expectedDelivery))
	})
}

// Lost marks the shipment as lost.
func (s *Shipment) Lost(r Record) error {
	return s.transition(OperationLost, r, func(at string) {
		s.status = Lost
		s.location = UnknownLocation
		s.expectedDelivery = NotApplicable
		s.addUpdate(fmt.Sprintf("Lost on %s, last known location: %s", at, s.location))
	})
}

// Canceled marks the shipment as canceled.
func (s *Shipment) Canceled(r Record) error {
	return s.transition(OperationCanceled, r, func(at string) {
		s.status = Canceled
		s.location = NotApplicable
		s.expectedDelivery = NotApplicable
		s.addUpdate("Canceled on " + at)
	})
}

// Note attaches the text in field 3. Nothing else changes.
func (s *Shipment) Note(r Record) error {
	return s.transition(OperationNote, r, func(string) {
		s.addNote(r.Field(fieldFirstArg))
	})
}

// Snapshot copies every field under one lock acquisition.
func (s *Shipment) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		ID:               s.id,
		Type:             s.categoryName,
		Status:           s.status.String(),
		Location:         s.location,
		ExpectedDelivery: s.expectedDelivery,
		Updates:          newestFirst(s.updates),
		Notes:            newestFirst(s.notes),
	}
}

// transition validates r for op and then runs apply under the write lock.
func (s *Shipment) transition(op Operation, r Record, apply func(at string)) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := op.ValidateRecord(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apply(s.formatter.Format(r.Timestamp()))
	return nil
}

func (s *Shipment) addUpdate(update string) {
	s.updates = append(s.updates, update)
}

func (s *Shipment) addNote(note string) {
	s.notes = append(s.notes, note)
}

func newestFirst(entries []string) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out
}
