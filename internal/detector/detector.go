package detector

import "gocv.io/x/gocv"

// Default configuration values.
const (
	DefaultModelPath = "models/hand_landmarker.task"
	DefaultMaxHands  = 4
)

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes an image and returns detected hand landmarks.
	// Returns an empty Result if no hands are detected.
	Detect(frame *gocv.Mat) (*Result, error)

	// Reconfigure replaces the live detector configuration. The detector
	// instance is rebuilt; detection behavior lags until this returns.
	Reconfigure(modelPath string, maxHands int) error

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// ModelPath is the path to the hand landmarker model file.
	ModelPath string

	// MaxHands is the maximum number of hands to detect (default: 4).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ModelPath:     DefaultModelPath,
		MaxHands:      DefaultMaxHands,
		MinConfidence: 0.5,
	}
}
