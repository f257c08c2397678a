package obs

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/tessui/tessui/pkg/runtime"
)

const flushTimeout = 2 * time.Second

// Reporter sends effect panics and terminal fatal errors to Sentry,
// grounded on the teacher's SentryReporter
// (pkg/bubbly/observability/sentry_reporter.go) but narrowed to the two
// failure kinds spec §7 names as worth reporting: effect panics and
// terminal I/O errors. A nil *Reporter makes every method a no-op, so
// Run never requires a configured DSN.
type Reporter struct {
	hub *sentry.Hub
}

// NewReporter initializes the Sentry SDK with dsn and returns a Reporter
// bound to the current hub. An empty dsn disables sending (useful for
// tests), matching the teacher's NewSentryReporter behavior.
func NewReporter(dsn string, opts ...func(*sentry.ClientOptions)) (*Reporter, error) {
	clientOpts := sentry.ClientOptions{Dsn: dsn}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	if err := sentry.Init(clientOpts); err != nil {
		return nil, fmt.Errorf("obs: init sentry: %w", err)
	}
	return &Reporter{hub: sentry.CurrentHub()}, nil
}

// ReportEffectPanic captures a recovered effect panic with the owning
// identity and effect index as tags.
func (r *Reporter) ReportEffectPanic(owner runtime.Identity, index int, err error) {
	if r == nil || r.hub == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component_id", owner.String())
		scope.SetTag("effect_index", fmt.Sprintf("%d", index))
		r.hub.CaptureException(err)
	})
}

// ReportFatal captures a terminal I/O error that is about to escape Run.
func (r *Reporter) ReportFatal(err error) {
	if r == nil || r.hub == nil {
		return
	}
	r.hub.CaptureException(err)
}

// Flush blocks until pending events are sent or the timeout elapses.
func (r *Reporter) Flush() {
	if r == nil || r.hub == nil {
		return
	}
	r.hub.Flush(flushTimeout)
}
