package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileEffectsSpawnsAndCancels(t *testing.T) {
	rt := NewRuntime()
	started := make(chan struct{})
	cancelled := make(chan struct{})

	effects := map[Identity][]Effect{
		RootIdentity: {
			{
				Label: "ticker",
				Run: func(ectx EffectContext) {
					close(started)
					<-ectx.Done()
					close(cancelled)
				},
			},
		},
	}

	rt.ReconcileEffects(map[Identity]bool{RootIdentity: true}, effects)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("effect never started")
	}

	assert.True(t, rt.HasEffects(RootIdentity))

	// Unmount: identity no longer live, cancel its handles.
	rt.ReconcileEffects(map[Identity]bool{}, nil)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("effect was not cancelled on unmount")
	}

	assert.False(t, rt.HasEffects(RootIdentity))
}

func TestEffectPanicIsContained(t *testing.T) {
	rt := NewRuntime()
	reported := make(chan error, 1)
	rt.OnEffectPanic = func(owner Identity, index int, err error) {
		reported <- err
	}

	effects := map[Identity][]Effect{
		RootIdentity: {
			{Run: func(ectx EffectContext) { panic("boom") }},
		},
	}
	rt.ReconcileEffects(map[Identity]bool{RootIdentity: true}, effects)

	select {
	case err := <-reported:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("panic was not reported")
	}
}

func TestReconcileEffectsSkipsAlreadyMounted(t *testing.T) {
	rt := NewRuntime()
	calls := 0
	effects := map[Identity][]Effect{
		RootIdentity: {{Run: func(ectx EffectContext) {
			calls++
			<-ectx.Done()
		}}},
	}

	rt.ReconcileEffects(map[Identity]bool{RootIdentity: true}, effects)
	// Second call passes the same map again; since already tracked it must
	// not spawn a duplicate.
	rt.ReconcileEffects(map[Identity]bool{RootIdentity: true}, effects)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, calls)

	rt.ReconcileEffects(map[Identity]bool{}, nil)
}
