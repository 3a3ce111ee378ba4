// Package render provides snapshot delivery for the display preview.
package render

import (
	"errors"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/video"
)

// Snapshotter delivers one encoded image of the current display,
// asynchronously via callback.
type Snapshotter interface {
	RequestSnapshot(fn func(data []byte, err error))
}

// PreviewSnapshotter renders snapshots from the live video device, with the
// current ghosting applied, encoded as PNG.
type PreviewSnapshotter struct {
	device video.Device
}

// NewPreviewSnapshotter creates a snapshotter over the given device.
func NewPreviewSnapshotter(device video.Device) *PreviewSnapshotter {
	return &PreviewSnapshotter{device: device}
}

// RequestSnapshot captures and encodes one frame, delivering the result to
// fn from a separate goroutine.
func (s *PreviewSnapshotter) RequestSnapshot(fn func(data []byte, err error)) {
	go func() {
		fn(s.capture())
	}()
}

func (s *PreviewSnapshotter) capture() ([]byte, error) {
	frame, err := s.device.ReadFrame(video.StageWidth, video.StageHeight)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, errors.New("no frame available")
	}
	defer frame.Close()

	video.GhostFrame(frame, s.device.Ghost())

	buf, err := gocv.IMEncode(".png", *frame)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}

// MockSnapshotter delivers a fixed payload or error, for tests.
type MockSnapshotter struct {
	Data []byte
	Err  error
}

// RequestSnapshot delivers the configured payload asynchronously.
func (m *MockSnapshotter) RequestSnapshot(fn func(data []byte, err error)) {
	go func() {
		fn(m.Data, m.Err)
	}()
}
