package util

import "time"

// Clock returns the current time; swapped out in tests.
type Clock func() time.Time

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ISOTimestamp renders t in UTC with sub-second precision.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
