package shipment

import (
	"fmt"
	"strings"
)

// Operation is the closed set of event tags a record can carry.
type Operation int

const (
	// OperationUnknown is the zero value and never dispatched.
	OperationUnknown Operation = iota
	OperationCreated
	OperationShipped
	OperationLocation
	OperationDelivered
	OperationDelayed
	OperationLost
	OperationCanceled
	OperationNote
)

type operationRule struct {
	tag   string
	arity int
	exact bool
}

func getOperationRules() map[Operation]operationRule {
	return map[Operation]operationRule{
		OperationCreated:   {tag: "created", arity: 5, exact: true},
		OperationShipped:   {tag: "shipped", arity: 4},
		OperationLocation:  {tag: "location", arity: 4},
		OperationDelivered: {tag: "delivered", arity: 3},
		OperationDelayed:   {tag: "delayed", arity: 4},
		OperationLost:      {tag: "lost", arity: 3},
		OperationCanceled:  {tag: "canceled", arity: 3},
		OperationNote:      {tag: "note", arity: 4},
	}
}

// ParseOperation resolves a tag case-insensitively.
// Tags outside the closed set return ErrUnknownOperation.
func ParseOperation(tag string) (Operation, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	rules := getOperationRules()
	for _, op := range Operations() {
		if rules[op].tag == normalized {
			return op, nil
		}
	}
	return OperationUnknown, fmt.Errorf("%w: %q", ErrUnknownOperation, tag)
}

// Operations lists every dispatchable operation in declaration order.
func Operations() []Operation {
	return []Operation{
		OperationCreated,
		OperationShipped,
		OperationLocation,
		OperationDelivered,
		OperationDelayed,
		OperationLost,
		OperationCanceled,
		OperationNote,
	}
}

// String returns the lower-case tag, or "unknown".
func (o Operation) String() string {
	if rule, ok := getOperationRules()[o]; ok {
		return rule.tag
	}
	return "unknown"
}

// ValidateRecord checks the record's field count against the operation's arity.
func (o Operation) ValidateRecord(r Record) error {
	rule, ok := getOperationRules()[o]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOperation, o)
	}
	if rule.exact && r.Len() != rule.arity {
		return fmt.Errorf("%w: %s expects exactly %d fields, got %d", ErrMalformedRecord, rule.tag, rule.arity, r.Len())
	}
	return r.Require(rule.arity)
}
