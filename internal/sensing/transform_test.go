package sensing

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestStageTransforms(t *testing.T) {
	cases := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"center X maps to 0", StageX, 0.5, 0},
		{"left edge maps to -240", StageX, 0, -240},
		{"right edge maps to 240", StageX, 1, 240},
		{"center Y maps to 0", StageY, 0.5, 0},
		{"top edge maps to 180", StageY, 0, 180},
		{"bottom edge maps to -180", StageY, 1, -180},
		{"Y below center is negative", StageY, 0.6, -36},
		{"depth scales by 200", StageZ, 0.1, 20},
		{"negative depth keeps its sign", StageZ, -0.25, -50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.fn(c.in); math.Abs(got-c.want) > epsilon {
				t.Errorf("got %f, want %f", got, c.want)
			}
		})
	}
}

func TestWorldTransforms(t *testing.T) {
	if got := WorldX(0.034); got != 0.034 {
		t.Errorf("WorldX(0.034) = %f, want 0.034", got)
	}
	if got := WorldY(0.08); got != -0.08 {
		t.Errorf("WorldY(0.08) = %f, want -0.08", got)
	}
	if got := WorldY(-0.05); got != 0.05 {
		t.Errorf("WorldY(-0.05) = %f, want 0.05", got)
	}
	if got := WorldZ(-0.012); got != -0.012 {
		t.Errorf("WorldZ(-0.012) = %f, want -0.012", got)
	}
}
