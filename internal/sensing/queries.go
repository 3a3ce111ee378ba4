package sensing

import "github.com/ayusman/mudra/internal/detector"

// HandednessNone is the sentinel returned for an out-of-range hand number.
const HandednessNone = " "

// NumberOfHands returns the number of hands in the cached result, 0 when
// the cache is empty.
func (c *Controller) NumberOfHands() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result.Hands()
}

// HandednessLabel returns the "Left"/"Right" label for the given 1-based
// hand number, or HandednessNone when the hand is out of range.
func (c *Controller) HandednessLabel(handNumber int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := handNumber - 1
	if i < 0 || i >= c.result.Hands() {
		return HandednessNone
	}
	return c.result.Handedness[i].Label
}

// LandmarkX returns the display-space X of a landmark, 0 if out of range.
func (c *Controller) LandmarkX(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, false)
	if !ok {
		return 0
	}
	return StageX(p.X)
}

// LandmarkY returns the display-space Y of a landmark, 0 if out of range.
func (c *Controller) LandmarkY(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, false)
	if !ok {
		return 0
	}
	return StageY(p.Y)
}

// LandmarkZ returns the scaled depth of a landmark, 0 if out of range.
func (c *Controller) LandmarkZ(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, false)
	if !ok {
		return 0
	}
	return StageZ(p.Z)
}

// RelativeLandmarkX returns the hand-relative X of a landmark, 0 if out of
// range.
func (c *Controller) RelativeLandmarkX(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, true)
	if !ok {
		return 0
	}
	return WorldX(p.X)
}

// RelativeLandmarkY returns the hand-relative Y of a landmark with the
// axis flipped to Y-up, 0 if out of range.
func (c *Controller) RelativeLandmarkY(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, true)
	if !ok {
		return 0
	}
	return WorldY(p.Y)
}

// RelativeLandmarkZ returns the hand-relative Z of a landmark, 0 if out of
// range.
func (c *Controller) RelativeLandmarkZ(handNumber, landmarkIndex int) float64 {
	p, ok := c.landmark(handNumber, landmarkIndex, true)
	if !ok {
		return 0
	}
	return WorldZ(p.Z)
}

// landmark resolves a 1-based hand number and 0-based landmark index
// against the cached result.
func (c *Controller) landmark(handNumber, landmarkIndex int, world bool) (detector.Point3D, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := handNumber - 1
	if i < 0 || i >= c.result.Hands() {
		return detector.Point3D{}, false
	}
	if landmarkIndex < 0 || landmarkIndex >= detector.NumLandmarks {
		return detector.Point3D{}, false
	}

	if world {
		return c.result.WorldLandmarks[i][landmarkIndex], true
	}
	return c.result.Landmarks[i][landmarkIndex], true
}
