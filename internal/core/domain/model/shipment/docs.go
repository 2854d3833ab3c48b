// Package shipment provides the shipment aggregate of the tracking system: the
// event records that drive it, the state machine that applies them, and the
// factory that creates shipments from "created" records.
//
// The package includes:
//   - Record: an ordered, immutable list of string fields describing one event
//   - Operation: the closed set of event tags a record may carry
//   - Status: the lifecycle states a shipment can report
//   - Category: standard, express, overnight and bulk, each with its own
//     advisory delivery-window rule
//   - Shipment: the per-identifier state machine
//   - Factory: the only way to create a Shipment
//   - Snapshot: a consistent read-only copy of a shipment's fields
//
// Key business rules:
//   - A shipment's identifier and category never change after creation
//   - Any transition is allowed from any status; later events overwrite earlier ones
//   - Updates and notes only grow and are reported most-recent-first
//   - A transition that rejects its record leaves the shipment untouched
//   - Delivery-window violations at creation are recorded as notes, never as failures
package shipment
