package ports

// ShipmentNotifier fans a changed shipment identifier out to live observers.
// Broadcast must not block on any observer.
type ShipmentNotifier interface {
	Broadcast(shipmentID string)
}

// TrackingMetrics records counters for the mutation and notification paths.
type TrackingMetrics interface {
	// EventProcessed counts one submitted record by operation tag and outcome.
	EventProcessed(operation, outcome string)

	// BroadcastSent counts one broadcast and how many subscribers received it.
	BroadcastSent(delivered int)

	// SubscriberDropped counts a subscriber removed after a failed send.
	SubscriberDropped()

	// SubscribersActive sets the current number of registered subscribers.
	SubscribersActive(n int)
}
