package shipment

// Status is the lifecycle state a shipment reports.
//
// Every transition is reachable from every state; the machine records what
// happened last and does not police the order of events:
//
//	Created ─┬─> Shipped ─┬─> Arrived at New Location ─┬─> Delivered
//	         │            │                            │
//	         └────────────┴──> Delayed / Lost / Canceled ┘   (and back again)
type Status int

const (
	// StatusUnknown is the zero value and never reported by a constructed shipment.
	StatusUnknown Status = iota
	Created
	Shipped
	ArrivedAtNewLocation
	Delivered
	Delayed
	Lost
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		Created:              "Created",
		Shipped:              "Shipped",
		ArrivedAtNewLocation: "Arrived at New Location",
		Delivered:            "Delivered",
		Delayed:              "Delayed",
		Lost:                 "Lost",
		Canceled:             "Canceled",
	}
}

// String returns the display name used in snapshots.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
