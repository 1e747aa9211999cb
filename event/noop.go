package event

var (
	_ Notifier      = NoopNotifier{}
	_ ServerMonitor = NoopMonitor{}
	_ Notifier      = LogNotifier{}
	_ ServerMonitor = LogMonitor{}
)

// NoopNotifier is a [Notifier] that discards all events.
type NoopNotifier struct{}

func (NoopNotifier) Raise(Alarm)  {}
func (NoopNotifier) Clear(string) {}

// NoopMonitor is a [ServerMonitor] that discards all transitions.
type NoopMonitor struct{}

func (NoopMonitor) Starting() {}
func (NoopMonitor) Started()  {}
func (NoopMonitor) Stopping() {}
func (NoopMonitor) Stopped()  {}
