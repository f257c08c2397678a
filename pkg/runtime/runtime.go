package runtime

import "sync"

// maxSelfSendsPerFrame caps self-sends per component per frame to guard
// against infinite update loops (spec §9, "suggested 1024").
const maxSelfSendsPerFrame = 1024

type topicMsg struct {
	name    string
	payload any
}

type topicSnapshot struct {
	owner Identity
	had   bool
}

// FocusRequestKind enumerates the focus helpers exposed on Context.
type FocusRequestKind uint8

const (
	FocusRequestNone FocusRequestKind = iota
	FocusRequestSelf                  // first focusable within a subtree
	FocusRequestFirst                 // first focusable in the whole tree
	FocusRequestBlur
)

// FocusRequest is produced by a Context focus helper and applied by the
// render layer after the next layout pass (spec §4.6).
type FocusRequest struct {
	Kind FocusRequestKind
	Root Identity // subtree root for FocusRequestSelf
}

// Runtime is the component runtime: state store, topic store, message
// queues, and the effect tracker (spec §4.1, §4.7). One Runtime backs one
// running application.
type Runtime struct {
	store  *StateStore
	topics *TopicStore

	mu             sync.Mutex
	direct         map[Identity][]any
	selfSendCount  map[Identity]int
	topicQueue     []topicMsg
	frameTopicWork []topicMsg
	frameSnapshot  map[string]topicSnapshot

	focusMu  sync.Mutex
	focusReq *FocusRequest

	effectsMu sync.Mutex
	effects   map[Identity][]*effectHandle
	seen      map[Identity]bool // identities live as of the current frame

	// OnEffectPanic, if set, is notified whenever a background effect
	// panics; see internal/obs for the default Prometheus+Sentry wiring.
	OnEffectPanic func(owner Identity, index int, err error)
}

// NewRuntime creates an empty Runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		store:     newStateStore(),
		topics:    newTopicStore(),
		direct:    make(map[Identity][]any),
		effects:   make(map[Identity][]*effectHandle),
		seen:      make(map[Identity]bool),
	}
}

// Topics exposes the topic store for read-only inspection (devtools, tests).
func (rt *Runtime) Topics() *TopicStore { return rt.topics }

// EnqueueDirect enqueues a direct message for id, dropping it once the
// per-frame self-send cap is exceeded.
func (rt *Runtime) EnqueueDirect(id Identity, msg any) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.selfSendCount == nil {
		rt.selfSendCount = make(map[Identity]int)
	}
	if rt.selfSendCount[id] >= maxSelfSendsPerFrame {
		return
	}
	rt.selfSendCount[id]++
	rt.direct[id] = append(rt.direct[id], msg)
}

// EnqueueTopic enqueues a message on a topic channel.
func (rt *Runtime) EnqueueTopic(name string, msg any) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.topicQueue = append(rt.topicQueue, topicMsg{name: name, payload: msg})
}

// BeginFrame freezes the pending topic queue and snapshots each
// referenced topic's ownership, and resets the self-send counters. Call
// once at the start of each frame's expansion, before visiting any
// component.
func (rt *Runtime) BeginFrame() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.frameTopicWork = rt.topicQueue
	rt.topicQueue = nil

	rt.frameSnapshot = make(map[string]topicSnapshot, len(rt.frameTopicWork))
	for _, m := range rt.frameTopicWork {
		if _, ok := rt.frameSnapshot[m.name]; ok {
			continue
		}
		owner, had := rt.topics.snapshot(m.name)
		rt.frameSnapshot[m.name] = topicSnapshot{owner: owner, had: had}
	}

	rt.selfSendCount = make(map[Identity]int)
}

// DrainDirect pops and clears id's direct message queue.
func (rt *Runtime) DrainDirect(id Identity) []any {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	msgs := rt.direct[id]
	delete(rt.direct, id)
	return msgs
}

// TopicMessagesFor returns this frame's pending topic messages that id
// should receive: every message on an unowned topic, or messages on
// topics id already owns (spec §4.1's topic drain rule).
func (rt *Runtime) TopicMessagesFor(id Identity) []struct {
	Topic   string
	Payload any
} {
	var out []struct {
		Topic   string
		Payload any
	}
	for _, m := range rt.frameTopicWork {
		snap := rt.frameSnapshot[m.name]
		if snap.had && snap.owner != id {
			continue
		}
		out = append(out, struct {
			Topic   string
			Payload any
		}{Topic: m.name, Payload: m.payload})
	}
	return out
}

// ApplyAction applies the action a at identity id, reporting whether it
// was Exit.
func (rt *Runtime) ApplyAction(id Identity, a Action) (exit bool) {
	switch a.Kind {
	case ActionUpdate:
		rt.store.Set(id, a.State)
	case ActionUpdateTopic:
		rt.topics.applyUpdate(a.Topic, id, a.State)
	case ActionExit:
		return true
	}
	return false
}

// ScheduleFocus records a pending focus change from a Context helper.
func (rt *Runtime) ScheduleFocus(req FocusRequest) {
	rt.focusMu.Lock()
	defer rt.focusMu.Unlock()
	r := req
	rt.focusReq = &r
}

// TakeFocusRequest returns and clears the pending focus request, if any.
func (rt *Runtime) TakeFocusRequest() (FocusRequest, bool) {
	rt.focusMu.Lock()
	defer rt.focusMu.Unlock()
	if rt.focusReq == nil {
		return FocusRequest{}, false
	}
	r := *rt.focusReq
	rt.focusReq = nil
	return r, true
}

// NewContext builds the Context a component's Update/View/Effects are
// invoked with for this frame.
func (rt *Runtime) NewContext(id Identity, firstRender bool) *Context {
	return &Context{id: id, rt: rt, firstRender: firstRender}
}

// DropState removes a component's stored state, called when it unmounts.
func (rt *Runtime) DropState(id Identity) {
	rt.store.Drop(id)
}
