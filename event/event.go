// Package event defines the notification seams between the conversion library
// and its host: alarm raising/clearing and server lifecycle transitions.
// The interfaces carry no conversion logic, they only hand events to the
// host's management plane.
package event

import "fmt"

//go:generate go tool mockgen -source=event.go -destination=eventmock/eventmock.go -package=eventmock

// Severity of an alarm.
type Severity uint8

const (
	SeverityCleared Severity = iota
	SeverityWarning
	SeverityMinor
	SeverityMajor
	SeverityCritical
)

func (s Severity) String() string {
	if s > SeverityCritical {
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
	return [...]string{"cleared", "warning", "minor", "major", "critical"}[s]
}

// Alarm is a single alarm occurrence.
type Alarm struct {
	// ID identifies the alarm condition, used to clear it later.
	ID string
	// Severity of the condition.
	Severity Severity
	// Text is a human readable description.
	Text string
}

func (a Alarm) String() string {
	return fmt.Sprintf("%s [%s] %s", a.ID, a.Severity, a.Text)
}

// Notifier receives alarm events.
//
// Implementations must be safe for concurrent use.
type Notifier interface {
	// Raise reports an active alarm condition.
	Raise(a Alarm)
	// Clear reports that the alarm condition with the given ID has ended.
	Clear(id string)
}

// ServerMonitor receives server lifecycle transitions.
//
// Implementations must be safe for concurrent use.
type ServerMonitor interface {
	Starting()
	Started()
	Stopping()
	Stopped()
}
