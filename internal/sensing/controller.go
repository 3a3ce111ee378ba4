// Package sensing owns the hand-pose sensing session: the polling detection
// loop, the latest-result cache, and the query surface over it.
package sensing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/stage"
	"github.com/ayusman/mudra/internal/video"
)

// DefaultIntervalMillis is the default delay between detection cycles.
const DefaultIntervalMillis = 100

// loopPhase tracks where the detection loop currently is.
type loopPhase int

const (
	phaseIdle loopPhase = iota
	phaseScheduled
	phaseInFlight
)

// ImageResolver resolves a named image to its encoded bytes.
// Resolution is exact-name first, with a 1-based index fallback.
type ImageResolver interface {
	Resolve(name string) ([]byte, bool)
}

// Config holds the collaborators a Controller is built from.
type Config struct {
	Detector  detector.Detector
	Device    video.Device
	Stage     stage.Provider
	Snapshots render.Snapshotter
	Images    ImageResolver
	Log       *logrus.Logger
}

// Controller owns the detection session. All state behind the mutex is
// written only by the loop and the public operations; queries take the
// read lock and see whatever result is currently cached.
type Controller struct {
	detector  detector.Detector
	device    video.Device
	stage     stage.Provider
	snapshots render.Snapshotter
	images    ImageResolver
	log       *logrus.Logger

	mu             sync.RWMutex
	running        bool
	phase          loopPhase
	generation     uint64
	intervalMillis int
	timer          *time.Timer
	result         *detector.Result
	modelPath      string
	maxHands       int
}

// New creates a stopped Controller with default configuration.
func New(cfg Config) *Controller {
	logger := cfg.Log
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Controller{
		detector:       cfg.Detector,
		device:         cfg.Device,
		stage:          cfg.Stage,
		snapshots:      cfg.Snapshots,
		images:         cfg.Images,
		log:            logger,
		intervalMillis: DefaultIntervalMillis,
		modelPath:      detector.DefaultModelPath,
		maxHands:       detector.DefaultMaxHands,
	}
}

// Start begins the detection loop. Idempotent: a running controller is
// left alone. Starting implicitly turns the display on and mirrors the
// camera if the display was off.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	if err := c.device.Enable(); err != nil {
		return err
	}

	if target := c.displayTarget(); target != nil && target.State() == stage.StateOff {
		target.SetState(stage.StateOn)
		c.device.SetMirror(true)
	}

	c.running = true
	c.scheduleLocked()

	c.log.WithField("interval_ms", c.intervalMillis).Info("sensing started")
	return nil
}

// Stop halts the loop, cancels any pending cycle, and clears the cached
// result. Idempotent. A detector call already in flight keeps running;
// its result is discarded when it settles.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	wasRunning := c.running
	c.running = false
	c.generation++
	c.result = nil
	if c.phase != phaseInFlight {
		c.phase = phaseIdle
	}

	if wasRunning {
		c.log.Info("sensing stopped")
	}
}

// IsRunning reports whether the detection loop is active.
func (c *Controller) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// IntervalMillis returns the delay between detection cycles.
func (c *Controller) IntervalMillis() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.intervalMillis
}

// SetIntervalMillis sets the cycle delay, clamped to >= 0. It takes effect
// on the next scheduling decision, not the currently pending cycle.
func (c *Controller) SetIntervalMillis(ms int) {
	if ms < 0 {
		ms = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.intervalMillis = ms
}

// scheduleLocked arms the timer for the next cycle. Callers hold the lock.
// The session generation is captured here so a cycle that settles after
// Stop cannot act on behalf of a later session.
func (c *Controller) scheduleLocked() {
	gen := c.generation
	c.phase = phaseScheduled
	c.timer = time.AfterFunc(time.Duration(c.intervalMillis)*time.Millisecond, func() {
		c.cycle(gen)
	})
}

// cycle runs one detection pass for the session identified by gen.
// Cancellation is cooperative: the generation is compared under the lock at
// the top, before the in-flight result is committed, and before
// rescheduling. Stop bumps the generation, so a result that settles after
// Stop is dropped even if a new session has started in the meantime, and a
// stale cycle can never fork a second timer chain.
func (c *Controller) cycle(gen uint64) {
	c.mu.Lock()
	if !c.running || gen != c.generation {
		if gen == c.generation {
			c.phase = phaseIdle
		}
		c.mu.Unlock()
		return
	}
	c.phase = phaseInFlight
	det := c.detector
	c.mu.Unlock()

	frame, err := c.device.ReadFrame(video.StageWidth, video.StageHeight)
	if err != nil || frame == nil {
		if err != nil {
			c.log.WithError(err).Debug("frame read failed")
		}
		c.reschedule(gen)
		return
	}

	result, err := det.Detect(frame)
	frame.Close()

	c.mu.Lock()
	if !c.running || gen != c.generation {
		if gen == c.generation {
			c.phase = phaseIdle
		}
		c.mu.Unlock()
		return
	}
	switch {
	case err != nil:
		// Transient detector failure: keep the previous result
		c.log.WithError(err).Error("hand detection failed")
	case result.Hands() > 0:
		c.result = result
	default:
		c.result = nil
	}
	c.mu.Unlock()

	c.reschedule(gen)
}

func (c *Controller) reschedule(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || gen != c.generation {
		if gen == c.generation {
			c.phase = phaseIdle
		}
		return
	}
	c.scheduleLocked()
}

func (c *Controller) displayTarget() *stage.Target {
	if c.stage == nil {
		return nil
	}
	return c.stage.DisplayTarget()
}

// Result returns the currently cached detection result, or nil when the
// cache is empty. The result is never mutated after being cached.
func (c *Controller) Result() *detector.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}
