package event

// MultiNotifier returns a [Notifier] that forwards every event to all of the
// given notifiers in order. Nil entries are skipped.
func MultiNotifier(ns ...Notifier) Notifier { return multiNotifier(ns) }

type multiNotifier []Notifier

func (m multiNotifier) Raise(a Alarm) {
	for _, n := range m {
		if n != nil {
			n.Raise(a)
		}
	}
}

func (m multiNotifier) Clear(id string) {
	for _, n := range m {
		if n != nil {
			n.Clear(id)
		}
	}
}

// MultiMonitor returns a [ServerMonitor] that forwards every transition to
// all of the given monitors in order. Nil entries are skipped.
func MultiMonitor(ms ...ServerMonitor) ServerMonitor { return multiMonitor(ms) }

type multiMonitor []ServerMonitor

func (m multiMonitor) Starting() {
	for _, sm := range m {
		if sm != nil {
			sm.Starting()
		}
	}
}

func (m multiMonitor) Started() {
	for _, sm := range m {
		if sm != nil {
			sm.Started()
		}
	}
}

func (m multiMonitor) Stopping() {
	for _, sm := range m {
		if sm != nil {
			sm.Stopping()
		}
	}
}

func (m multiMonitor) Stopped() {
	for _, sm := range m {
		if sm != nil {
			sm.Stopped()
		}
	}
}
