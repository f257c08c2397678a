package runtime

import "github.com/tessui/tessui/pkg/vnode"

// Context carries a component's identity plus references to the runtime's
// shared state map, dispatcher, topic store, and message queues (spec
// §4.1). Components never mutate it directly; all mutation happens by
// returning an Action or scheduling work through its methods.
type Context struct {
	id          Identity
	rt          *Runtime
	firstRender bool
}

// Identity returns the current component's identity.
func (c *Context) Identity() Identity { return c.id }

// Send enqueues msg to the current component's direct queue.
func (c *Context) Send(msg any) {
	c.rt.EnqueueDirect(c.id, msg)
}

// SendToTopic enqueues msg on the named topic queue.
func (c *Context) SendToTopic(name string, msg any) {
	c.rt.EnqueueTopic(name, msg)
}

// ReadTopic returns a clone of the named topic's state, if present.
func (c *Context) ReadTopic(name string) (any, bool) {
	return c.rt.topics.Read(name)
}

// Handler returns a callable that enqueues msg to the component that
// created it, regardless of who invokes the callable (spec §4.1:
// "Returned callables capture the identity of the component that created
// them").
func (c *Context) Handler(msg any) vnode.Handler {
	id := c.id
	rt := c.rt
	return func(payload any) {
		rt.EnqueueDirect(id, msg)
	}
}

// HandlerWithValue is like Handler but derives the message from the
// event payload at invocation time.
func (c *Context) HandlerWithValue(fn func(payload any) any) vnode.Handler {
	id := c.id
	rt := c.rt
	return func(payload any) {
		rt.EnqueueDirect(id, fn(payload))
	}
}

// IsFirstRender reports whether this is the component's first expansion.
func (c *Context) IsFirstRender() bool { return c.firstRender }

// FocusSelf requests focus move to the first focusable node in this
// component's subtree, applied after the next layout.
func (c *Context) FocusSelf() {
	c.rt.ScheduleFocus(FocusRequest{Kind: FocusRequestSelf, Root: c.id})
}

// FocusFirst requests focus move to the first focusable node in the
// whole tree.
func (c *Context) FocusFirst() {
	c.rt.ScheduleFocus(FocusRequest{Kind: FocusRequestFirst})
}

// BlurFocus requests the currently focused node lose focus.
func (c *Context) BlurFocus() {
	c.rt.ScheduleFocus(FocusRequest{Kind: FocusRequestBlur})
}
