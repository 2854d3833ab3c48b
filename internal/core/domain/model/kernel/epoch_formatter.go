package kernel

import (
	"strconv"
	"strings"
	"time"
)

// EpochLayout is the display layout for shipment history timestamps.
const EpochLayout = "01/02/2006 at 15:04"

// EpochFormatter renders epoch-millisecond strings in a fixed time zone.
// The zero value formats in UTC.
type EpochFormatter struct {
	loc *time.Location
}

// NewEpochFormatter returns a formatter for loc; a nil loc means time.Local.
func NewEpochFormatter(loc *time.Location) EpochFormatter {
	if loc == nil {
		loc = time.Local
	}
	return EpochFormatter{loc: loc}
}

// Format converts raw epoch milliseconds to EpochLayout.
// Anything that does not parse as an integer formats to "".
func (f EpochFormatter) Format(raw string) string {
	millis, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return ""
	}

	loc := f.loc
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(millis).In(loc).Format(EpochLayout)
}
