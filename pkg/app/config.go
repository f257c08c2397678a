package app

import "time"

// defaultPollInterval is the event-poll wakeup interval spec §5 names:
// "Event polling uses poll_duration_ms as a wakeup interval so timers and
// effects can drive redraws without keystrokes", default 16ms.
const defaultPollInterval = 16 * time.Millisecond

// RenderConfig holds the run loop's tunables (spec §6: "A render_config
// setter accepts: poll interval, double-buffer on/off, diffing on/off,
// alternate-screen on/off"). Built with functional options, following the
// teacher's RunOption-over-runConfig pattern (pkg/bubbly/runner_options.go)
// rather than exported struct-literal construction.
type RenderConfig struct {
	pollInterval time.Duration
	doubleBuffer bool
	diffing      bool
	altScreen    bool
	inline       bool
	inlineHeight HeightPolicy
	inlineClear  bool
	devtoolsDump bool
}

func defaultRenderConfig() RenderConfig {
	return RenderConfig{
		pollInterval: defaultPollInterval,
		doubleBuffer: true,
		diffing:      true,
		altScreen:    true,
		inlineHeight: Fixed(1),
	}
}

// Option configures a RenderConfig; pass any number to New.
type Option func(*RenderConfig)

// WithPollInterval overrides the event-poll wakeup interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *RenderConfig) { c.pollInterval = d }
}

// WithDoubleBuffer toggles front/back buffer diffing. Disabling it makes
// every frame a full repaint (useful for debugging the draw walk itself
// without diff noise).
func WithDoubleBuffer(enabled bool) Option {
	return func(c *RenderConfig) { c.doubleBuffer = enabled }
}

// WithDiffing toggles vdom diffing. Disabling it replaces the whole
// render tree every frame instead of patching it.
func WithDiffing(enabled bool) Option {
	return func(c *RenderConfig) { c.diffing = enabled }
}

// WithAltScreen toggles the alternate screen buffer. Ignored when
// WithInline is also set, since inline mode never switches screens.
func WithAltScreen(enabled bool) Option {
	return func(c *RenderConfig) { c.altScreen = enabled }
}

// WithInline switches to inline rendering (spec §6): the app renders
// into the current terminal buffer at a reserved region instead of the
// alternate screen, sized according to policy.
func WithInline(policy HeightPolicy) Option {
	return func(c *RenderConfig) {
		c.inline = true
		c.inlineHeight = policy
	}
}

// WithInlineClearOnExit chooses the inline-mode exit behavior (spec §6):
// true clears the reserved lines on exit, false (the default) leaves the
// last frame in place and moves the cursor below it.
func WithInlineClearOnExit(enabled bool) Option {
	return func(c *RenderConfig) { c.inlineClear = enabled }
}

// WithDevtoolsDump enables the internal/devtools snapshot hook, normally
// gated by the TESSUI_DEVTOOLS_DUMP environment variable (spec §4.9 of
// SPEC_FULL.md); this option forces it on regardless of environment.
func WithDevtoolsDump(enabled bool) Option {
	return func(c *RenderConfig) { c.devtoolsDump = enabled }
}
