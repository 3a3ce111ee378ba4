// Package detector provides hand landmark detection interfaces and result types.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in space with x, y, z coordinates.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Handedness classifies one detected hand as left or right.
type Handedness struct {
	Label string  `json:"label"` // "Left" or "Right"
	Score float64 `json:"score"`
}

// Result is the outcome of one detection pass over a single image.
//
// The three slices are parallel: entry i of each describes the same hand.
// Landmarks are in normalized image space (x,y in [0,1], z relative depth);
// WorldLandmarks are real-world scale, centered on the hand's geometric
// center. A Result with no hands has zero-length slices; a Result is never
// partially populated.
type Result struct {
	Handedness     []Handedness            `json:"handedness"`
	Landmarks      [][NumLandmarks]Point3D `json:"landmarks"`
	WorldLandmarks [][NumLandmarks]Point3D `json:"worldLandmarks"`
}

// Hands returns the number of detected hands.
func (r *Result) Hands() int {
	if r == nil {
		return 0
	}
	return len(r.Handedness)
}

// Empty reports whether the result contains no hands.
func (r *Result) Empty() bool {
	return r.Hands() == 0
}

// Valid reports whether the parallel-slice invariant holds.
func (r *Result) Valid() bool {
	if r == nil {
		return false
	}
	return len(r.Handedness) == len(r.Landmarks) &&
		len(r.Landmarks) == len(r.WorldLandmarks)
}
