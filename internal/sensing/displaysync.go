package sensing

import "github.com/ayusman/mudra/internal/stage"

// CameraDirection selects how the capture preview is oriented.
type CameraDirection string

const (
	DirectionMirrored CameraDirection = "mirrored"
	DirectionFlipped  CameraDirection = "flipped"
)

// DisplayTransparency reads the shared display target's transparency,
// falling back to the default when no target exists.
func (c *Controller) DisplayTransparency() float64 {
	if t := c.displayTarget(); t != nil {
		return t.Transparency()
	}
	return stage.DefaultTransparency
}

// SetDisplayTransparency writes the shared display target's transparency.
// No-op when no target exists.
func (c *Controller) SetDisplayTransparency(v float64) {
	if t := c.displayTarget(); t != nil {
		t.SetTransparency(v)
	}
}

// DisplayState reads the shared display target's video state, falling
// back to the default when no target exists.
func (c *Controller) DisplayState() stage.VideoState {
	if t := c.displayTarget(); t != nil {
		return t.State()
	}
	return stage.DefaultState
}

// SetDisplayState writes the shared display target's video state. No-op
// when no target exists.
func (c *Controller) SetDisplayState(s stage.VideoState) {
	if t := c.displayTarget(); t != nil {
		t.SetState(s)
	}
}

// ApplyVideoTransparency stores the transparency and applies the same
// ghosting to the capture device, which is what the preview reflects.
func (c *Controller) ApplyVideoTransparency(v float64) {
	c.SetDisplayTransparency(v)
	c.device.ApplyGhost(v)
}

// SetCameraDirection sets the device mirror flag: mirrored means the
// preview behaves like a mirror, flipped shows the raw orientation.
// Independent of display on/off state.
func (c *Controller) SetCameraDirection(d CameraDirection) {
	c.device.SetMirror(d == DirectionMirrored)
}

// SyncDisplayToDevice pushes the stored display state and transparency to
// the device in one step. Intended to run once when a project loads, so
// the preview does not flash the default configuration first.
func (c *Controller) SyncDisplayToDevice() {
	c.device.ApplyGhost(c.DisplayTransparency())

	switch c.DisplayState() {
	case stage.StateOn:
		c.device.SetMirror(true)
		if err := c.device.Enable(); err != nil {
			c.log.WithError(err).Error("enable video device failed")
		}
	case stage.StateOnFlipped:
		c.device.SetMirror(false)
		if err := c.device.Enable(); err != nil {
			c.log.WithError(err).Error("enable video device failed")
		}
	default:
		if err := c.device.Disable(); err != nil {
			c.log.WithError(err).Error("disable video device failed")
		}
	}
}
