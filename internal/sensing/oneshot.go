package sensing

import (
	"context"
	"image"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/video"
)

// Messages surfaced to callers of the one-shot operations.
const (
	detectFinishedMessage = "hand detection finished"
	imageNotFoundMessage  = "image not found"
)

// DetectFromSnapshot requests one snapshot of the display, runs detection
// on it, and replaces the cached result. It never returns an error: every
// failure in the pipeline is surfaced as a Status.
func (c *Controller) DetectFromSnapshot(ctx context.Context) Status {
	if c.snapshots == nil {
		return Failed("no snapshot source configured")
	}

	type snapshot struct {
		data []byte
		err  error
	}
	ch := make(chan snapshot, 1)
	c.snapshots.RequestSnapshot(func(data []byte, err error) {
		select {
		case ch <- snapshot{data: data, err: err}:
		default:
		}
	})

	var s snapshot
	select {
	case <-ctx.Done():
		return Failed(ctx.Err().Error())
	case s = <-ch:
	}
	if s.err != nil {
		return Failed(s.err.Error())
	}

	return c.detectEncoded(s.data)
}

// DetectFromNamedImage resolves a named image, runs detection on it, and
// replaces the cached result. A lookup miss reports StatusNotFound without
// invoking the detector.
func (c *Controller) DetectFromNamedImage(name string) Status {
	if c.images == nil {
		return NotFound(imageNotFoundMessage)
	}

	data, ok := c.images.Resolve(name)
	if !ok {
		return NotFound(imageNotFoundMessage)
	}

	return c.detectEncoded(data)
}

// detectEncoded decodes an encoded image to the working resolution, runs
// detection, and commits the result to the cache wholesale.
func (c *Controller) detectEncoded(data []byte) Status {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return Failed(err.Error())
	}
	defer mat.Close()

	if mat.Empty() {
		return Failed("decoded image is empty")
	}

	if mat.Cols() != video.StageWidth || mat.Rows() != video.StageHeight {
		gocv.Resize(mat, &mat, image.Pt(video.StageWidth, video.StageHeight), 0, 0, gocv.InterpolationLinear)
	}

	c.mu.RLock()
	det := c.detector
	c.mu.RUnlock()

	result, err := det.Detect(&mat)
	if err != nil {
		c.log.WithError(err).Error("one-shot detection failed")
		return Failed(err.Error())
	}

	c.mu.Lock()
	if result.Hands() > 0 {
		c.result = result
	} else {
		c.result = nil
	}
	c.mu.Unlock()

	return OK(detectFinishedMessage)
}
