package video

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestClampGhost(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}

	for _, c := range cases {
		if got := clampGhost(c.in); got != c.want {
			t.Errorf("clampGhost(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestGhostFrame(t *testing.T) {
	t.Run("zero ghost leaves frame untouched", func(t *testing.T) {
		frame := gocv.NewMatWithSizeFromScalar(
			gocv.NewScalar(10, 20, 30, 0), 4, 4, gocv.MatTypeCV8UC3)
		defer frame.Close()

		GhostFrame(&frame, 0)

		v := frame.GetVecbAt(0, 0)
		if v[0] != 10 || v[1] != 20 || v[2] != 30 {
			t.Errorf("pixel = %v, want [10 20 30]", v)
		}
	})

	t.Run("full ghost washes frame to white", func(t *testing.T) {
		frame := gocv.NewMatWithSizeFromScalar(
			gocv.NewScalar(0, 0, 0, 0), 4, 4, gocv.MatTypeCV8UC3)
		defer frame.Close()

		GhostFrame(&frame, 100)

		v := frame.GetVecbAt(0, 0)
		if v[0] != 255 || v[1] != 255 || v[2] != 255 {
			t.Errorf("pixel = %v, want [255 255 255]", v)
		}
	})

	t.Run("nil frame is a no-op", func(t *testing.T) {
		GhostFrame(nil, 50)
	})
}

func TestMockDevice(t *testing.T) {
	t.Run("read requires enable", func(t *testing.T) {
		d := NewMockDevice()
		if _, err := d.ReadFrame(StageWidth, StageHeight); err != ErrDeviceDisabled {
			t.Errorf("ReadFrame() error = %v, want ErrDeviceDisabled", err)
		}
	})

	t.Run("serves frames at requested size", func(t *testing.T) {
		d := NewMockDevice()
		if err := d.Enable(); err != nil {
			t.Fatalf("Enable() error = %v", err)
		}

		frame, err := d.ReadFrame(StageWidth, StageHeight)
		if err != nil {
			t.Fatalf("ReadFrame() error = %v", err)
		}
		defer frame.Close()

		if frame.Cols() != StageWidth || frame.Rows() != StageHeight {
			t.Errorf("frame size = %dx%d, want %dx%d",
				frame.Cols(), frame.Rows(), StageWidth, StageHeight)
		}
	})

	t.Run("frameless device returns nil frame without error", func(t *testing.T) {
		d := NewMockDevice()
		d.Enable()
		d.SetFrameless(true)

		frame, err := d.ReadFrame(StageWidth, StageHeight)
		if err != nil {
			t.Fatalf("ReadFrame() error = %v", err)
		}
		if frame != nil {
			t.Error("expected nil frame from frameless device")
		}
	})

	t.Run("records mirror and ghost calls", func(t *testing.T) {
		d := NewMockDevice()
		d.SetMirror(true)
		d.SetMirror(false)
		d.ApplyGhost(30)
		d.ApplyGhost(120)

		mirrors := d.MirrorSets()
		if len(mirrors) != 2 || !mirrors[0] || mirrors[1] {
			t.Errorf("MirrorSets() = %v, want [true false]", mirrors)
		}

		ghosts := d.GhostValues()
		if len(ghosts) != 2 || ghosts[0] != 30 || ghosts[1] != 100 {
			t.Errorf("GhostValues() = %v, want [30 100]", ghosts)
		}
		if d.Ghost() != 100 {
			t.Errorf("Ghost() = %f, want 100", d.Ghost())
		}
	})
}
