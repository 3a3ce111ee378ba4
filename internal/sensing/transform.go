package sensing

import "github.com/ayusman/mudra/internal/video"

// DepthScale converts the detector's relative depth into display units.
const DepthScale = 200

// StageX maps normalized image-space X (0 = left edge) into a display
// coordinate centered at 0, spanning [-240, 240].
func StageX(x float64) float64 {
	return (x - 0.5) * video.StageWidth
}

// StageY maps normalized image-space Y (0 = top edge) into a display
// coordinate centered at 0 with the axis inverted so up is positive,
// spanning [-180, 180].
func StageY(y float64) float64 {
	return (0.5 - y) * video.StageHeight
}

// StageZ scales relative depth. The detector's sign convention is kept:
// more negative is closer to the camera.
func StageZ(z float64) float64 {
	return z * DepthScale
}

// WorldX passes hand-relative X through unscaled.
func WorldX(x float64) float64 {
	return x
}

// WorldY negates hand-relative Y so the world frame's Y-down convention
// matches the display's Y-up convention.
func WorldY(y float64) float64 {
	return -y
}

// WorldZ passes hand-relative Z through unscaled.
func WorldZ(z float64) float64 {
	return z
}
