package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	mu        sync.Mutex
	result    *Result
	err       error
	gate      chan struct{}
	detects   int
	modelPath string
	maxHands  int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetResult sets the result that will be returned by Detect.
func (m *MockDetector) SetResult(r *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = r
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Gate makes Detect block until the returned function is called. Tests use
// this to hold a detection in flight while exercising stop behavior.
func (m *MockDetector) Gate() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Detects returns how many times Detect has been called.
func (m *MockDetector) Detects() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detects
}

// Detect returns the pre-configured result or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*Result, error) {
	m.mu.Lock()
	m.detects++
	gate := m.gate
	result := m.result
	err := m.err
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &Result{}, nil
	}
	return result, nil
}

// Reconfigure records the last configuration passed in.
func (m *MockDetector) Reconfigure(modelPath string, maxHands int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelPath = modelPath
	m.maxHands = maxHands
	return m.err
}

// LastConfig returns the model path and hand limit from the most recent
// Reconfigure call.
func (m *MockDetector) LastConfig() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modelPath, m.maxHands
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// SingleHandResult returns a preset Result with one right hand whose wrist
// sits slightly right of and below image center.
func SingleHandResult() *Result {
	r := &Result{
		Handedness: []Handedness{{Label: "Right", Score: 0.95}},
	}

	var landmarks [NumLandmarks]Point3D
	var world [NumLandmarks]Point3D

	landmarks[Wrist] = Point3D{X: 0.5, Y: 0.6, Z: 0.1}
	world[Wrist] = Point3D{X: 0.01, Y: 0.08, Z: 0.02}

	// Walk the remaining joints up and to the right of the wrist
	for i := 1; i < NumLandmarks; i++ {
		landmarks[i] = Point3D{
			X: 0.5 + float64(i)*0.01,
			Y: 0.6 - float64(i)*0.015,
			Z: 0.1 - float64(i)*0.002,
		}
		world[i] = Point3D{
			X: 0.01 + float64(i)*0.003,
			Y: 0.08 - float64(i)*0.004,
			Z: 0.02 - float64(i)*0.001,
		}
	}

	r.Landmarks = append(r.Landmarks, landmarks)
	r.WorldLandmarks = append(r.WorldLandmarks, world)
	return r
}

// TwoHandResult returns a preset Result with a right hand followed by a
// left hand on opposite sides of the image.
func TwoHandResult() *Result {
	r := SingleHandResult()

	r.Handedness = append(r.Handedness, Handedness{Label: "Left", Score: 0.9})

	var landmarks [NumLandmarks]Point3D
	var world [NumLandmarks]Point3D
	for i := 0; i < NumLandmarks; i++ {
		landmarks[i] = Point3D{
			X: 0.2 + float64(i)*0.008,
			Y: 0.4 + float64(i)*0.01,
			Z: -0.05 + float64(i)*0.001,
		}
		world[i] = Point3D{
			X: -0.04 + float64(i)*0.002,
			Y: -0.02 + float64(i)*0.003,
			Z: 0.01,
		}
	}
	r.Landmarks = append(r.Landmarks, landmarks)
	r.WorldLandmarks = append(r.WorldLandmarks, world)
	return r
}
