package runtime

// Component exposes the three pure operations every component is built
// from (spec §4.1): Update reacts to a message (direct or topic),
// View describes the UI, Effects lists the background tasks the
// component wants running while mounted. All three are pure over the
// runtime's observable state — they read ctx and return values, never
// mutate state directly.
type Component interface {
	// Update handles one message. topic is non-nil when msg arrived via
	// the topic queue, carrying the topic's name.
	Update(ctx *Context, msg any, topic *string) Action

	// View returns this frame's declarative UI tree. It may itself
	// contain further Component nodes, expanded recursively.
	View(ctx *Context) *Node

	// Effects returns the background tasks this component wants running
	// for as long as it stays mounted. Called once, the frame the
	// component is first expanded.
	Effects(ctx *Context) []Effect
}

// ComponentFunc adapts three plain functions into a Component, for small
// components that don't need a named type — mirrors the teacher's
// FuncComponent-style adapter (pkg/bubbly's function-component pattern)
// generalized to the three-operation interface above.
type ComponentFunc struct {
	UpdateFn  func(ctx *Context, msg any, topic *string) Action
	ViewFn    func(ctx *Context) *Node
	EffectsFn func(ctx *Context) []Effect
}

func (f ComponentFunc) Update(ctx *Context, msg any, topic *string) Action {
	if f.UpdateFn == nil {
		return None()
	}
	return f.UpdateFn(ctx, msg, topic)
}

func (f ComponentFunc) View(ctx *Context) *Node {
	if f.ViewFn == nil {
		return ContainerNode()
	}
	return f.ViewFn(ctx)
}

func (f ComponentFunc) Effects(ctx *Context) []Effect {
	if f.EffectsFn == nil {
		return nil
	}
	return f.EffectsFn(ctx)
}
