package shipment

// Snapshot is a consistent, read-only copy of a shipment at one instant.
// Updates and Notes are most-recent-first and never nil.
type Snapshot struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Status           string   `json:"status"`
	Location         string   `json:"location"`
	ExpectedDelivery string   `json:"expectedDelivery"`
	Updates          []string `json:"updates"`
	Notes            []string `json:"notes"`
}
