package shipment

import "errors"

var (
	// ErrMalformedRecord is returned when a record has the wrong number of fields,
	// an empty identifier, or an unparseable numeric field the operation depends on.
	ErrMalformedRecord = errors.New("malformed event record")

	// ErrUnknownOperation is returned for an operation tag outside the closed set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnknownCategory is returned when a "created" record names an unsupported category.
	ErrUnknownCategory = errors.New("unknown shipment category")
)
