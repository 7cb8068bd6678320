package utils

import "time"

// India time location (IST, +05:30). Billing dates and promo windows are
// interpreted in the tenant's local calendar, not UTC.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsIST converts an epoch value in seconds to IST.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsIST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(istLoc)
}

// StartOfDay truncates t to midnight IST. Used for inclusive date-window
// comparisons on promo codes.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(istLoc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, istLoc)
}

// SameOrAfterDay reports whether a's calendar day is on or after b's.
func SameOrAfterDay(a, b time.Time) bool {
	return !StartOfDay(a).Before(StartOfDay(b))
}

// SameOrBeforeDay reports whether a's calendar day is on or before b's.
func SameOrBeforeDay(a, b time.Time) bool {
	return !StartOfDay(a).After(StartOfDay(b))
}

func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}
