// Package oceantime converts between calendar time and "ocean time",
// seconds since 1980-01-01, the epoch used by the signalling equipment this
// module interoperates with. Pure arithmetic, no timezone logic beyond what
// [time.Time] provides.
package oceantime

import "time"

// epochOffset is the number of seconds between the Unix epoch (1970-01-01)
// and the ocean epoch (1980-01-01).
const epochOffset int64 = 315532800

// Epoch is the zero point of ocean time, 1980-01-01T00:00:00Z.
var Epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// At returns t as seconds since the ocean epoch.
func At(t time.Time) int64 { return t.Unix() - epochOffset }

// Now returns the current time as seconds since the ocean epoch.
func Now() int64 { return At(time.Now()) }

// Date returns the calendar time for sec seconds since the ocean epoch.
// It is the exact inverse of [At] for any sec.
func Date(sec int64) time.Time { return time.Unix(sec+epochOffset, 0).UTC() }
