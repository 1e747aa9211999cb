package event_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/telno/event"
	"github.com/ghettovoice/telno/event/eventmock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sev  event.Severity
		want string
	}{
		{event.SeverityCleared, "cleared"},
		{event.SeverityWarning, "warning"},
		{event.SeverityMinor, "minor"},
		{event.SeverityMajor, "major"},
		{event.SeverityCritical, "critical"},
		{event.Severity(7), "severity(7)"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.sev.String(); got != c.want {
				t.Errorf("sev.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestMultiNotifier(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	a := event.Alarm{ID: "LINK-1", Severity: event.SeverityMajor, Text: "signalling link down"}

	n1 := eventmock.NewMockNotifier(ctrl)
	n2 := eventmock.NewMockNotifier(ctrl)
	gomock.InOrder(
		n1.EXPECT().Raise(a),
		n2.EXPECT().Raise(a),
	)
	n1.EXPECT().Clear("LINK-1")
	n2.EXPECT().Clear("LINK-1")

	n := event.MultiNotifier(n1, nil, n2)
	n.Raise(a)
	n.Clear("LINK-1")
}

func TestMultiMonitor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	m1 := eventmock.NewMockServerMonitor(ctrl)
	m2 := eventmock.NewMockServerMonitor(ctrl)
	gomock.InOrder(
		m1.EXPECT().Starting(),
		m2.EXPECT().Starting(),
		m1.EXPECT().Started(),
		m2.EXPECT().Started(),
		m1.EXPECT().Stopping(),
		m2.EXPECT().Stopping(),
		m1.EXPECT().Stopped(),
		m2.EXPECT().Stopped(),
	)

	m := event.MultiMonitor(m1, nil, m2)
	m.Starting()
	m.Started()
	m.Stopping()
	m.Stopped()
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := event.LogNotifier{Log: lg}
	n.Raise(event.Alarm{ID: "CFG-1", Severity: event.SeverityWarning, Text: "configuration reloaded"})
	n.Clear("CFG-1")

	out := buf.String()
	for _, want := range []string{"CFG-1", "configuration reloaded", "alarm cleared", "warning"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestLogNotifier_Levels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sev  event.Severity
		want string
	}{
		{event.SeverityCleared, "level=INFO"},
		{event.SeverityWarning, "level=INFO"},
		{event.SeverityMinor, "level=WARN"},
		{event.SeverityMajor, "level=ERROR"},
		{event.SeverityCritical, "level=ERROR"},
	}

	for _, c := range cases {
		t.Run(c.sev.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			event.LogNotifier{Log: lg}.Raise(event.Alarm{ID: "A-1", Severity: c.sev, Text: "x"})
			if out := buf.String(); !strings.Contains(out, c.want) {
				t.Errorf("log output %q does not contain %q", out, c.want)
			}
		})
	}
}

func TestLogMonitor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := event.LogMonitor{Log: lg}
	m.Starting()
	m.Started()
	m.Stopping()
	m.Stopped()

	out := buf.String()
	for _, want := range []string{"server starting", "server started", "server stopping", "server stopped"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
