// Package stage models the shared display target that owns video
// transparency and on/off state.
package stage

import "sync"

// VideoState describes how the camera feed is shown on the display target.
type VideoState string

const (
	StateOff       VideoState = "off"
	StateOn        VideoState = "on"
	StateOnFlipped VideoState = "on-flipped"
)

// Display defaults used when no target exists.
const (
	DefaultTransparency = 50.0
	DefaultState        = StateOff
)

// Target is the externally-owned display record. Its fields are read and
// written opportunistically; the sensing layer never owns it.
type Target struct {
	mu           sync.Mutex
	transparency float64
	state        VideoState
}

// NewTarget creates a Target with the documented defaults.
func NewTarget() *Target {
	return &Target{
		transparency: DefaultTransparency,
		state:        DefaultState,
	}
}

// Transparency returns the stored video transparency (0-100).
func (t *Target) Transparency() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transparency
}

// SetTransparency stores a video transparency value.
func (t *Target) SetTransparency(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transparency = v
}

// State returns the stored video display state.
func (t *Target) State() VideoState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// SetState stores a video display state.
func (t *Target) SetState(s VideoState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

// Provider hands out the current display target. A provider may return nil
// when no target exists; readers then fall back to the defaults.
type Provider interface {
	DisplayTarget() *Target
}

// MemoryProvider is a Provider backed by a single in-process target.
type MemoryProvider struct {
	target *Target
}

// NewMemoryProvider creates a MemoryProvider with a fresh default target.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{target: NewTarget()}
}

// DisplayTarget returns the provider's target.
func (p *MemoryProvider) DisplayTarget() *Target {
	return p.target
}

// EmptyProvider is a Provider with no target, for exercising the
// absent-target fallbacks.
type EmptyProvider struct{}

// DisplayTarget always returns nil.
func (EmptyProvider) DisplayTarget() *Target {
	return nil
}
