package sensing

import "strings"

// Messages surfaced to callers of the configuration setters.
const (
	modelLoadedMessage = "model loaded"
	maxHandsSetMessage = "max hands set"
)

// ModelPath returns the stored model path. It reflects the last accepted
// value even while a reconfigure is still pending.
func (c *Controller) ModelPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modelPath
}

// SetModelPath stores a new model path and reconfigures the detector with
// it. A blank path is rejected without touching anything. The stored value
// is updated before the detector is rebuilt, so a failed reconfigure
// leaves the path set but the old detector behavior in place.
func (c *Controller) SetModelPath(path string) Status {
	path = strings.TrimSpace(path)
	if path == "" {
		return Invalid("model path is empty")
	}

	c.mu.Lock()
	c.modelPath = path
	det := c.detector
	maxHands := c.maxHands
	c.mu.Unlock()

	if err := det.Reconfigure(path, maxHands); err != nil {
		c.log.WithError(err).WithField("model_path", path).Error("model reload failed")
		return Failed(err.Error())
	}

	c.log.WithField("model_path", path).Info("model loaded")
	return OK(modelLoadedMessage)
}

// MaxHands returns the stored detection hand limit.
func (c *Controller) MaxHands() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHands
}

// SetMaxHands stores a new hand limit and reconfigures the detector.
// Values below 1 are rejected without touching anything.
func (c *Controller) SetMaxHands(n int) Status {
	if n < 1 {
		return Invalid("max hands must be at least 1")
	}

	c.mu.Lock()
	c.maxHands = n
	det := c.detector
	path := c.modelPath
	c.mu.Unlock()

	if err := det.Reconfigure(path, n); err != nil {
		c.log.WithError(err).WithField("max_hands", n).Error("detector reconfigure failed")
		return Failed(err.Error())
	}

	return OK(maxHandsSetMessage)
}
