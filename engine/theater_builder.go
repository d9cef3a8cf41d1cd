package engine

import "github.com/Carmen-Shannon/pixel-theater/engine/scene"

// Option is a functional option for configuring a Theater.
// Use the With* functions to create options that are applied directly to
// the theater instance.
type Option func(*Theater)

// WithProfiling enables or disables per-frame profiler output.
//
// Parameters:
//   - enabled: if true, the profiler logs frame and memory stats
//
// Returns:
//   - Option: option function to apply
func WithProfiling(enabled bool) Option {
	return func(t *Theater) {
		t.profilingEnabled = enabled
	}
}

// WithScenes queues scenes to be added after platform initialization. The
// scenes are connected in order by the first UseXPlatform call.
//
// Parameters:
//   - scenes: the scenes to register
//
// Returns:
//   - Option: option function to apply
func WithScenes(scenes ...scene.Scene) Option {
	return func(t *Theater) {
		t.pending = append(t.pending, scenes...)
	}
}
