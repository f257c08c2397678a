package runtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tessui/tessui/internal/errs"
)

// EffectContext is passed to a running effect. Done is closed when the
// effect's owning component is unmounted; the effect must observe it at
// its own cooperative suspension points (spec §5, "Cancellation is
// cooperative").
type EffectContext struct {
	context.Context
	Send func(msg any)
}

// EffectFunc is a long-lived background task bound to a component's
// lifetime (spec glossary: "Effect").
type EffectFunc func(ectx EffectContext)

// Effect pairs a runnable with a label used for logging/devtools.
type Effect struct {
	Label string
	Run   EffectFunc
}

// effectHandle is the runtime's cancellation handle for one running
// effect, keyed by owning identity plus index per spec §3.
type effectHandle struct {
	id     string // uuid, for logging/devtools only
	owner  Identity
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

func newEffectHandle(owner Identity, index int, cancel context.CancelFunc) *effectHandle {
	return &effectHandle{
		id:     uuid.NewString(),
		owner:  owner,
		index:  index,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// runEffect launches eff on its own goroutine, recovering a panic so it
// stays contained to that task (spec §7, "Effect panic").
func (rt *Runtime) runEffect(owner Identity, index int, eff Effect) *effectHandle {
	ctx, cancel := context.WithCancel(context.Background())
	h := newEffectHandle(owner, index, cancel)

	ectx := EffectContext{
		Context: ctx,
		Send: func(msg any) {
			rt.EnqueueDirect(owner, msg)
		},
	}

	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				rt.reportEffectPanic(owner, index, fmt.Errorf("%w: %v", errs.ErrEffectPanic, r))
			}
		}()
		eff.Run(ectx)
	}()

	return h
}

// reportEffectPanic is overridable by the app layer (internal/obs) via
// Runtime.OnEffectPanic; by default it's a no-op so core stays
// dependency-free of any particular reporter.
func (rt *Runtime) reportEffectPanic(owner Identity, index int, err error) {
	if rt.OnEffectPanic != nil {
		rt.OnEffectPanic(owner, index, err)
	}
}

// cancelNow requests cooperative cancellation; it does not block waiting for
// the task to observe it (spec §5: "The runtime does not force-terminate").
func (h *effectHandle) cancelNow() {
	h.cancel()
}
