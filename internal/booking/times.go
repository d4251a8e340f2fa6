package booking

import (
    "errors"
    "time"
)

// Wire formats accepted from the backend.  The contract gives no timezone
// guarantee: some deployments emit RFC 3339 stamps, others bare local
// datetimes with or without seconds.  Zoneless stamps are interpreted in the
// configured display location.
var stampFormats = []string{
    time.RFC3339,
    "2006-01-02T15:04:05",
    "2006-01-02T15:04",
}

// ErrBadStamp is returned when a datetime string matches none of the known
// backend formats.
var ErrBadStamp = errors.New("unrecognised datetime format")

// ParseStamp parses a backend datetime string and normalises it to UTC.
// Comparison always happens in UTC; rendering converts back to the display
// location (see FormatLocal).
func ParseStamp(s string, loc *time.Location) (time.Time, error) {
    for _, f := range stampFormats {
        if t, err := time.ParseInLocation(f, s, loc); err == nil {
            return t.UTC(), nil
        }
    }
    return time.Time{}, ErrBadStamp
}

// ComposeLocal combines a form date ("2006-01-02") and clock time ("15:04")
// into a timestamp in loc.  The result keeps loc so the operating-hours
// check evaluates against the local business window.
func ComposeLocal(date, clock string, loc *time.Location) (time.Time, error) {
    return time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, loc)
}

// FormatLocal renders a timestamp for display in loc.
func FormatLocal(t time.Time, loc *time.Location) string {
    return t.In(loc).Format("2006/01/02 15:04")
}
