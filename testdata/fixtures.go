// Package testdata generates synthetic frames and encoded images for tests.
package testdata

import (
	"fmt"

	"gocv.io/x/gocv"
)

// NewFrame creates a solid-color BGR frame of the given size. The caller
// closes the returned Mat.
func NewFrame(width, height int, b, g, r uint8) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(b), float64(g), float64(r), 0),
		height, width, gocv.MatTypeCV8UC3)
	return &mat
}

// EncodeFrame encodes a frame with the given extension (".png", ".jpg").
func EncodeFrame(mat *gocv.Mat, ext string) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.FileExt(ext), *mat)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", ext, err)
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}

// EncodedImage builds an encoded solid-color image in one call.
func EncodedImage(width, height int, ext string) ([]byte, error) {
	mat := NewFrame(width, height, 32, 64, 96)
	defer mat.Close()
	return EncodeFrame(mat, ext)
}
