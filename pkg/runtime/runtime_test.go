package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStateInitializesDefaultAndSurvivesTypeMismatch(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext(RootIdentity, true)

	n := GetState[int](ctx)
	assert.Equal(t, 0, n)

	rt.ApplyAction(RootIdentity, Update(7))
	n = GetState[int](ctx)
	assert.Equal(t, 7, n)

	// Type mismatch reinitializes to the zero value instead of panicking.
	s := GetState[string](ctx)
	assert.Equal(t, "", s)
}

func TestDirectMessageQueueDrain(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext(RootIdentity, false)

	ctx.Send("a")
	ctx.Send("b")

	msgs := rt.DrainDirect(RootIdentity)
	assert.Equal(t, []any{"a", "b"}, msgs)

	// Draining clears the queue.
	assert.Empty(t, rt.DrainDirect(RootIdentity))
}

func TestSelfSendCapDropsExcess(t *testing.T) {
	rt := NewRuntime()
	id := RootIdentity
	for i := 0; i < maxSelfSendsPerFrame+50; i++ {
		rt.EnqueueDirect(id, i)
	}
	msgs := rt.DrainDirect(id)
	assert.Len(t, msgs, maxSelfSendsPerFrame)
}

func TestTopicClaimScenario(t *testing.T) {
	rt := NewRuntime()
	a := Identity("0.0")
	b := Identity("0.1")

	// Frame 1: unowned topic message reaches both components.
	rt.EnqueueTopic("t", "msg1")
	rt.BeginFrame()

	aMsgs := rt.TopicMessagesFor(a)
	bMsgs := rt.TopicMessagesFor(b)
	require.Len(t, aMsgs, 1)
	require.Len(t, bMsgs, 1, "both components see the message while the topic is unowned")

	// a claims ownership first (frame-traversal order).
	rt.ApplyAction(a, UpdateTopic("t", "s1"))
	// b's later UpdateTopic in the same frame is a no-op: it is not owner.
	rt.ApplyAction(b, UpdateTopic("t", "s2"))

	owner, had := rt.Topics().Owner("t")
	require.True(t, had)
	assert.Equal(t, a, owner)

	state, ok := rt.Topics().Read("t")
	require.True(t, ok)
	assert.Equal(t, "s1", state, "non-owner's update must not overwrite topic state")

	// Frame 2: only the owner receives further messages on this topic.
	rt.EnqueueTopic("t", "msg2")
	rt.BeginFrame()

	aMsgs = rt.TopicMessagesFor(a)
	bMsgs = rt.TopicMessagesFor(b)
	assert.Len(t, aMsgs, 1)
	assert.Empty(t, bMsgs, "non-owner stops receiving messages on an owned topic")
}

func TestTopicOwnershipMonotonic(t *testing.T) {
	rt := NewRuntime()
	a := Identity("0.0")
	b := Identity("0.1")

	rt.ApplyAction(a, UpdateTopic("t", 1))
	rt.ApplyAction(b, UpdateTopic("t", 2)) // ignored: a already owns "t"

	owner, _ := rt.Topics().Owner("t")
	assert.Equal(t, a, owner)
	state, _ := rt.Topics().Read("t")
	assert.Equal(t, 1, state)
}

func TestFocusRequestScheduling(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext(Identity("0.2"), false)

	_, ok := rt.TakeFocusRequest()
	assert.False(t, ok)

	ctx.FocusSelf()
	req, ok := rt.TakeFocusRequest()
	require.True(t, ok)
	assert.Equal(t, FocusRequestSelf, req.Kind)
	assert.Equal(t, Identity("0.2"), req.Root)

	// Taking clears the request.
	_, ok = rt.TakeFocusRequest()
	assert.False(t, ok)
}

func TestHandlerCapturesCreatingIdentity(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext(Identity("0.1"), false)

	h := ctx.Handler("clicked")
	h(nil) // invoked from anywhere, still targets 0.1

	msgs := rt.DrainDirect(Identity("0.1"))
	assert.Equal(t, []any{"clicked"}, msgs)
}

func TestExitActionReported(t *testing.T) {
	rt := NewRuntime()
	assert.True(t, rt.ApplyAction(RootIdentity, Exit()))
	assert.False(t, rt.ApplyAction(RootIdentity, None()))
}
