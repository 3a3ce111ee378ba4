// Package video provides camera device access using GoCV (OpenCV).
package video

import (
	"errors"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Working resolution used by the sensing pipeline.
const (
	StageWidth  = 480
	StageHeight = 360
)

// ErrDeviceDisabled is returned when reading from a device that is not enabled.
var ErrDeviceDisabled = errors.New("video device is not enabled")

// Device defines the interface for video capture devices.
type Device interface {
	// Enable opens the device for capturing frames. Idempotent.
	Enable() error

	// Disable closes the device and releases resources. Idempotent.
	Disable() error

	// IsEnabled reports whether the device is currently capturing.
	IsEnabled() bool

	// SetMirror sets whether frames are mirrored horizontally.
	SetMirror(mirror bool)

	// Mirror reports the current mirror setting.
	Mirror() bool

	// ReadFrame reads a single frame scaled to the given size, or nil if
	// no frame is currently available. The caller closes the returned Mat.
	ReadFrame(width, height int) (*gocv.Mat, error)

	// ApplyGhost sets the preview ghosting value (0-100). 0 is opaque,
	// 100 fully washed out.
	ApplyGhost(value float64)

	// Ghost returns the current ghosting value.
	Ghost() float64
}

// deviceImpl captures from a camera device using GoCV.
type deviceImpl struct {
	deviceID int
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	enabled  bool
	mirror   bool
	ghost    float64
}

// NewDevice creates a Device for the given camera ID.
func NewDevice(deviceID int) Device {
	return &deviceImpl{
		deviceID: deviceID,
	}
}

func (d *deviceImpl) Enable() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.enabled {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(d.deviceID)
	if err != nil {
		return err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, StageWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, StageHeight)

	d.capture = capture
	d.enabled = true

	return nil
}

func (d *deviceImpl) Disable() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled || d.capture == nil {
		d.enabled = false
		return nil
	}

	err := d.capture.Close()
	d.capture = nil
	d.enabled = false

	return err
}

func (d *deviceImpl) IsEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

func (d *deviceImpl) SetMirror(mirror bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mirror = mirror
}

func (d *deviceImpl) Mirror() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mirror
}

// ReadFrame reads a frame, mirrors it if configured, and scales it to the
// requested size.
func (d *deviceImpl) ReadFrame(width, height int) (*gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled || d.capture == nil {
		return nil, ErrDeviceDisabled
	}

	mat := gocv.NewMat()
	if ok := d.capture.Read(&mat); !ok {
		mat.Close()
		return nil, nil
	}

	if mat.Empty() {
		mat.Close()
		return nil, nil
	}

	if d.mirror {
		gocv.Flip(mat, &mat, 1)
	}

	if mat.Cols() != width || mat.Rows() != height {
		gocv.Resize(mat, &mat, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	}

	return &mat, nil
}

func (d *deviceImpl) ApplyGhost(value float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ghost = clampGhost(value)
}

func (d *deviceImpl) Ghost() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ghost
}

func clampGhost(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// GhostFrame blends a frame toward white by the given ghosting value.
// The input Mat is modified in place.
func GhostFrame(frame *gocv.Mat, ghost float64) {
	ghost = clampGhost(ghost)
	if ghost == 0 || frame == nil || frame.Empty() {
		return
	}

	white := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 0),
		frame.Rows(), frame.Cols(), frame.Type())
	defer white.Close()

	alpha := ghost / 100
	gocv.AddWeighted(*frame, 1-alpha, white, alpha, 0, frame)
}
