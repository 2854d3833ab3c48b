package shipment

import (
	"fmt"
	"strings"
)

const (
	fieldTimestamp = 0
	fieldID        = 1
	fieldTag       = 2
	fieldFirstArg  = 3

	headerFields = 3

	// FieldSeparator splits raw records. Fields cannot contain it; there is no escaping.
	FieldSeparator = ","
)

// Record is one event: [timestamp, shipment id, operation tag, ...operation fields].
// Records are immutable; accessors never expose the backing slice.
type Record struct {
	fields []string
}

// NewRecord builds a record from already-split fields.
func NewRecord(fields ...string) Record {
	return Record{fields: append([]string(nil), fields...)}
}

// ParseRecord splits raw on FieldSeparator. It rejects input that cannot carry a
// timestamp, an identifier and a tag, and input whose identifier is empty.
//
// Example:
//
//	rec, err := shipment.ParseRecord("1690000000000,ABC123,location,Chicago")
//	// rec.ShipmentID() == "ABC123", rec.Tag() == "location", rec.Field(3) == "Chicago"
func ParseRecord(raw string) (Record, error) {
	if raw == "" {
		return Record{}, fmt.Errorf("%w: record is empty", ErrMalformedRecord)
	}

	rec := Record{fields: strings.Split(raw, FieldSeparator)}
	if err := rec.validateHeader(); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Field returns the i-th field, or "" when i is out of range.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Timestamp returns the raw epoch-millisecond field.
func (r Record) Timestamp() string {
	return r.Field(fieldTimestamp)
}

// ShipmentID returns the identifier the record targets.
func (r Record) ShipmentID() string {
	return r.Field(fieldID)
}

// Tag returns the operation tag exactly as submitted.
func (r Record) Tag() string {
	return r.Field(fieldTag)
}

// String joins the fields back into their raw form.
func (r Record) String() string {
	return strings.Join(r.fields, FieldSeparator)
}

// Require returns ErrMalformedRecord when the record has fewer than n fields.
func (r Record) Require(n int) error {
	if len(r.fields) < n {
		return fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedRecord, n, len(r.fields))
	}
	return nil
}

func (r Record) validateHeader() error {
	if err := r.Require(headerFields); err != nil {
		return err
	}
	if r.ShipmentID() == "" {
		return fmt.Errorf("%w: shipment identifier is empty", ErrMalformedRecord)
	}
	return nil
}
