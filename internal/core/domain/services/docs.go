// Package services provides domain services that coordinate the shipment
// aggregate with its repository.
//
// The package includes:
//   - OperationDispatcher: the single mutation path, resolving an event record's
//     tag and applying it by creating a shipment or transitioning an existing one
package services
