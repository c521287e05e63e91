// Package geometry measures contours: area, perimeter, moments, centroid, shape
// factor, and the centroid-biased crop box used to isolate one organism.
//
// Contours are plain point slices. They are converted to gocv point vectors only for
// the duration of a library call, so callers never have to Close them.
package geometry

import (
	"errors"
	"image"
	"math"

	"gocv.io/x/gocv"
)

var (
	ErrEmptyContour   = errors.New("geometry: empty contour")
	ErrZeroPerimeter  = errors.New("geometry: contour perimeter is zero")
	ErrNegativeRadius = errors.New("geometry: sampling radius is negative")
)

// Contour is a closed boundary in trace order.
type Contour []image.Point

func withPointVector[T any](c Contour, fn func(pv gocv.PointVector) T) T {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()
	return fn(pv)
}

// Area is the absolute polygon area enclosed by c.
func Area(c Contour) float64 {
	if len(c) == 0 {
		return 0
	}
	return withPointVector(c, func(pv gocv.PointVector) float64 {
		return gocv.ContourArea(pv)
	})
}

// Perimeter is the closed arc length of c.
func Perimeter(c Contour) float64 {
	if len(c) == 0 {
		return 0
	}
	return withPointVector(c, func(pv gocv.PointVector) float64 {
		return gocv.ArcLength(pv, true)
	})
}

// Centroid is the area-weighted center of c, truncated toward zero. A contour with
// zero area (a point or a line) yields (0,0).
func Centroid(c Contour) image.Point {
	if len(c) == 0 {
		return image.Point{}
	}
	m := withPointVector(c, func(pv gocv.PointVector) map[string]float64 {
		points := gocv.NewMatFromPointVector(pv, true)
		defer points.Close()
		return gocv.Moments(points, false)
	})

	m00 := m["m00"]
	if m00 == 0 {
		return image.Point{}
	}
	return image.Point{
		X: int(m["m10"] / m00),
		Y: int(m["m01"] / m00),
	}
}

// Distance is the Euclidean distance between two points.
func Distance(p1, p2 image.Point) float64 {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ShapeFactor is the circularity 4*pi*area/perimeter^2: 1 for a circle, lower for
// elongated or ragged outlines.
func ShapeFactor(c Contour) (float64, error) {
	p := Perimeter(c)
	if p == 0 {
		return 0, ErrZeroPerimeter
	}
	return 4 * math.Pi * Area(c) / (p * p), nil
}

// MinEnclosingCircle returns the center and radius of the smallest circle containing c.
func MinEnclosingCircle(c Contour) (x, y, radius float64, err error) {
	if len(c) == 0 {
		return 0, 0, 0, ErrEmptyContour
	}
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()

	cx, cy, r := gocv.MinEnclosingCircle(pv)
	return float64(cx), float64(cy), float64(r), nil
}

// BoundingRect is the upright rectangle containing every point; Max is exclusive.
func BoundingRect(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	return withPointVector(points, func(pv gocv.PointVector) image.Rectangle {
		return gocv.BoundingRect(pv)
	})
}
