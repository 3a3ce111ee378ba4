package video

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDevice is a scriptable Device for tests. It serves synthetic frames
// and records every enable, mirror, and ghost call.
type MockDevice struct {
	mu          sync.Mutex
	enabled     bool
	mirror      bool
	ghost       float64
	frameless   bool
	enableErr   error
	enables     int
	disables    int
	mirrorSets  []bool
	ghostValues []float64
}

// NewMockDevice creates a MockDevice that serves synthetic frames.
func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (d *MockDevice) Enable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.enableErr != nil {
		return d.enableErr
	}
	d.enabled = true
	d.enables++
	return nil
}

func (d *MockDevice) Disable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = false
	d.disables++
	return nil
}

func (d *MockDevice) IsEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

func (d *MockDevice) SetMirror(mirror bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mirror = mirror
	d.mirrorSets = append(d.mirrorSets, mirror)
}

func (d *MockDevice) Mirror() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mirror
}

// ReadFrame returns a blank frame of the requested size, or nil when the
// device has been set frameless.
func (d *MockDevice) ReadFrame(width, height int) (*gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled {
		return nil, ErrDeviceDisabled
	}
	if d.frameless {
		return nil, nil
	}

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	return &mat, nil
}

func (d *MockDevice) ApplyGhost(value float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ghost = clampGhost(value)
	d.ghostValues = append(d.ghostValues, d.ghost)
}

func (d *MockDevice) Ghost() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ghost
}

// SetEnableErr makes Enable fail with the given error.
func (d *MockDevice) SetEnableErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enableErr = err
}

// SetFrameless controls whether ReadFrame reports no frame available.
func (d *MockDevice) SetFrameless(frameless bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frameless = frameless
}

// Enables returns how many times Enable has been called.
func (d *MockDevice) Enables() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enables
}

// MirrorSets returns every value passed to SetMirror, in order.
func (d *MockDevice) MirrorSets() []bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]bool(nil), d.mirrorSets...)
}

// GhostValues returns every value passed to ApplyGhost, in order.
func (d *MockDevice) GhostValues() []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]float64(nil), d.ghostValues...)
}
