package affine

import (
	"image"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/math/f32"
)

func eq(p1, p2 f32.Vec2) bool {
	tol := 1e-5
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestTransformRotateAround(t *testing.T) {
	p := f32.Vec2{-1, -1}
	pt := Transform(Mul(Offsetting(f32.Vec2{1, 1}), Rotating(-math.Pi/2), Offsetting(f32.Vec2{-1, -1})), p)
	target := f32.Vec2{-1, 3}
	if !eq(pt, target) {
		t.Errorf("Rotate not as expected, got %v, want %v", pt, target)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		p    f32.Vec2
		want image.Point
	}{
		{f32.Vec2{0, 0}, image.Pt(0, 0)},
		{f32.Vec2{0.49, -0.49}, image.Pt(0, 0)},
		{f32.Vec2{0.5, -0.5}, image.Pt(1, -1)},
		{f32.Vec2{10.7, 3.2}, image.Pt(11, 3)},
	}
	for _, test := range tests {
		if got := Round(test.p); got != test.want {
			t.Errorf("Round(%v) = %v, want %v", test.p, got, test.want)
		}
	}
	p := image.Pt(-7, 12)
	if got := Round(Pointf(p)); got != p {
		t.Errorf("Round(Pointf(%v)) = %v", p, got)
	}
}

func TestPolygon(t *testing.T) {
	square := []f32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	m := Mul(Offsetting(f32.Vec2{50, 50}), Rotating(math.Pi/2), Scaling(f32.Vec2{10, 10}))
	got := Polygon(m, square...)
	want := []image.Point{{60, 40}, {60, 60}, {40, 60}, {40, 40}}
	if !slices.Equal(got, want) {
		t.Errorf("Polygon = %v, want %v", got, want)
	}
}
