package event

import (
	"log/slog"

	"github.com/ghettovoice/telno/internal/log"
)

// LogNotifier is a [Notifier] that writes alarm events to a slog logger.
type LogNotifier struct {
	// Log is the destination logger. Defaults to the module's default logger.
	Log *slog.Logger
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Log == nil {
		return log.Def
	}
	return n.Log
}

func (n LogNotifier) Raise(a Alarm) {
	lg := n.logger().With("alarm", a.ID, "severity", a.Severity.String())
	switch {
	case a.Severity >= SeverityMajor:
		lg.Error(a.Text)
	case a.Severity >= SeverityMinor:
		lg.Warn(a.Text)
	default:
		lg.Info(a.Text)
	}
}

func (n LogNotifier) Clear(id string) {
	n.logger().Info("alarm cleared", "alarm", id)
}

// LogMonitor is a [ServerMonitor] that writes lifecycle transitions
// to a slog logger.
type LogMonitor struct {
	// Log is the destination logger. Defaults to the module's default logger.
	Log *slog.Logger
}

func (m LogMonitor) logger() *slog.Logger {
	if m.Log == nil {
		return log.Def
	}
	return m.Log
}

func (m LogMonitor) Starting() { m.logger().Debug("server starting") }
func (m LogMonitor) Started()  { m.logger().Debug("server started") }
func (m LogMonitor) Stopping() { m.logger().Debug("server stopping") }
func (m LogMonitor) Stopped()  { m.logger().Debug("server stopped") }
