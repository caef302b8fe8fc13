package transform

import (
	"math"

	"github.com/matzehuels/ordinatrix/pkg/point"
)

// Apply transforms every point with the given mode and parameters.
// Points are transformed independently; the input slice is not modified.
// An unknown mode returns copies of the points unchanged.
func Apply(points []point.Point, mode Mode, params Params, includeZ bool) []point.Point {
	out := make([]point.Point, len(points))
	for i, p := range points {
		out[i] = Point(p, mode, params, includeZ)
	}
	return out
}

// Point transforms a single point. The tag is passed through unchanged.
func Point(p point.Point, mode Mode, params Params, includeZ bool) point.Point {
	x, y, z := params.Resolve(mode)

	switch mode {
	case Translate:
		return translate(p, x, y, z, includeZ)
	case Scale:
		return scale(p, x, y, z)
	case Rotate:
		if !includeZ {
			return rotatePlanar(p, z)
		}
		return rotate(p, x, y, z)
	}
	return p
}

func translate(p point.Point, tx, ty, tz float64, includeZ bool) point.Point {
	p.X += tx
	p.Y += ty
	if includeZ {
		p.Z += tz
	}
	return p
}

func scale(p point.Point, sx, sy, sz float64) point.Point {
	p.X *= sx
	p.Y *= sy
	p.Z *= sz
	return p
}

// rotate applies right-handed rotations about X, then Y, then Z.
// Angles are in degrees.
func rotate(p point.Point, rx, ry, rz float64) point.Point {
	sinX, cosX := math.Sincos(radians(rx))
	sinY, cosY := math.Sincos(radians(ry))
	sinZ, cosZ := math.Sincos(radians(rz))

	// About X
	x1 := p.X
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX

	// About Y
	x2 := x1*cosY + z1*sinY
	y2 := y1
	z2 := -x1*sinY + z1*cosY

	// About Z
	p.X = x2*cosZ - y2*sinZ
	p.Y = x2*sinZ + y2*cosZ
	p.Z = z2
	return p
}

// rotatePlanar rotates p in the XY plane by angle degrees. Z is untouched.
func rotatePlanar(p point.Point, angle float64) point.Point {
	sin, cos := math.Sincos(radians(angle))
	x, y := p.X, p.Y
	p.X = x*cos - y*sin
	p.Y = x*sin + y*cos
	return p
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
