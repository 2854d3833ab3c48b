package shipment

import (
	"fmt"
	"strconv"
	"strings"
)

// Category selects the advisory delivery-window rule applied at creation.
type Category int

const (
	CategoryUnknown Category = iota
	Standard
	Express
	Overnight
	Bulk
)

const (
	// Window limits use the record's raw timestamp units.
	oneDay    int64 = 86400
	threeDays int64 = 259200
)

// windowRule flags a shipment whose expected delivery falls outside its category's window.
type windowRule struct {
	violated func(window int64) bool
	note     string
}

func getCategoryNames() map[string]Category {
	return map[string]Category{
		"standard":  Standard,
		"express":   Express,
		"overnight": Overnight,
		"bulk":      Bulk,
	}
}

func getWindowRules() map[Category]windowRule {
	//nolint:exhaustive // standard shipments have no window rule
	return map[Category]windowRule{
		Bulk: {
			violated: func(window int64) bool { return window < threeDays },
			note:     "Expected delivery date less than 3 day expected minimum for bulk shipments",
		},
		Express: {
			violated: func(window int64) bool { return window > threeDays },
			note:     "Expected delivery date greater than 3 day expected maximum for express shipments",
		},
		Overnight: {
			violated: func(window int64) bool { return window > oneDay },
			note:     "Expected delivery date greater than 1 day expected maximum for overnight shipments",
		},
	}
}

// ParseCategory looks a category up case-insensitively.
func ParseCategory(name string) (Category, error) {
	if c, ok := getCategoryNames()[strings.ToLower(name)]; ok {
		return c, nil
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) String() string {
	for name, category := range getCategoryNames() {
		if category == c {
			return name
		}
	}
	return "unknown"
}

// Advisory evaluates the category's delivery-window rule against the raw
// created and expected-delivery values. It returns the note to record, or ""
// when the window is acceptable or the category has no rule. Values that are
// not integers yield ErrMalformedRecord, but only for categories with a rule.
func (c Category) Advisory(createdRaw, expectedRaw string) (string, error) {
	rule, ok := getWindowRules()[c]
	if !ok {
		return "", nil
	}

	created, err := strconv.ParseInt(createdRaw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: created timestamp %q is not an integer", ErrMalformedRecord, createdRaw)
	}
	expected, err := strconv.ParseInt(expectedRaw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: expected delivery %q is not an integer", ErrMalformedRecord, expectedRaw)
	}

	if rule.violated(expected - created) {
		return rule.note, nil
	}
	return "", nil
}
