// Package kernel provides the small value objects shared by the tracking domain.
//
// The package includes:
//   - UUID: identifiers for subscriptions and journal entries
//   - EpochFormatter: renders epoch-millisecond strings for shipment history lines
//
// Both types are immutable once constructed and safe for concurrent use.
package kernel
