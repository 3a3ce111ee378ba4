package sensing

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/stage"
	"github.com/ayusman/mudra/internal/video"
)

func TestDisplayProxy(t *testing.T) {
	t.Run("reads and writes the shared target", func(t *testing.T) {
		c, _, _, provider := testController()

		if got := c.DisplayTransparency(); got != stage.DefaultTransparency {
			t.Errorf("DisplayTransparency() = %f, want default", got)
		}

		c.SetDisplayTransparency(80)
		if got := provider.DisplayTarget().Transparency(); got != 80 {
			t.Errorf("target transparency = %f, want 80", got)
		}

		c.SetDisplayState(stage.StateOn)
		if got := c.DisplayState(); got != stage.StateOn {
			t.Errorf("DisplayState() = %q, want %q", got, stage.StateOn)
		}
	})

	t.Run("absent target falls back to defaults", func(t *testing.T) {
		logger := logrus.New()
		logger.SetLevel(logrus.PanicLevel)

		c := New(Config{
			Detector: detector.NewMockDetector(),
			Device:   video.NewMockDevice(),
			Stage:    stage.EmptyProvider{},
			Log:      logger,
		})

		if got := c.DisplayTransparency(); got != 50 {
			t.Errorf("DisplayTransparency() = %f, want 50", got)
		}
		if got := c.DisplayState(); got != stage.StateOff {
			t.Errorf("DisplayState() = %q, want off", got)
		}

		// Sets are silent no-ops without a target.
		c.SetDisplayTransparency(10)
		c.SetDisplayState(stage.StateOn)
		if got := c.DisplayTransparency(); got != 50 {
			t.Errorf("DisplayTransparency() = %f after no-op set, want 50", got)
		}
	})
}

func TestApplyVideoTransparency(t *testing.T) {
	c, _, dev, provider := testController()

	c.ApplyVideoTransparency(30)

	if got := provider.DisplayTarget().Transparency(); got != 30 {
		t.Errorf("target transparency = %f, want 30", got)
	}
	if got := dev.Ghost(); got != 30 {
		t.Errorf("device ghost = %f, want 30", got)
	}
}

func TestSetCameraDirection(t *testing.T) {
	c, _, dev, _ := testController()

	c.SetCameraDirection(DirectionMirrored)
	if !dev.Mirror() {
		t.Error("mirrored direction should set mirror true")
	}

	c.SetCameraDirection(DirectionFlipped)
	if dev.Mirror() {
		t.Error("flipped direction should set mirror false")
	}
}

func TestSyncDisplayToDevice(t *testing.T) {
	t.Run("off state disables the device", func(t *testing.T) {
		c, _, dev, _ := testController()
		dev.Enable()

		c.SyncDisplayToDevice()

		if dev.IsEnabled() {
			t.Error("device should be disabled when display state is off")
		}
		if got := dev.Ghost(); got != stage.DefaultTransparency {
			t.Errorf("device ghost = %f, want %f", got, stage.DefaultTransparency)
		}
	})

	t.Run("on state enables and mirrors", func(t *testing.T) {
		c, _, dev, provider := testController()
		provider.DisplayTarget().SetState(stage.StateOn)
		provider.DisplayTarget().SetTransparency(25)

		c.SyncDisplayToDevice()

		if !dev.IsEnabled() {
			t.Error("device should be enabled")
		}
		if !dev.Mirror() {
			t.Error("device should be mirrored for the on state")
		}
		if got := dev.Ghost(); got != 25 {
			t.Errorf("device ghost = %f, want 25", got)
		}
	})

	t.Run("on-flipped state enables without mirroring", func(t *testing.T) {
		c, _, dev, provider := testController()
		provider.DisplayTarget().SetState(stage.StateOnFlipped)

		c.SyncDisplayToDevice()

		if !dev.IsEnabled() {
			t.Error("device should be enabled")
		}
		if dev.Mirror() {
			t.Error("device should not be mirrored for the on-flipped state")
		}
	})
}
