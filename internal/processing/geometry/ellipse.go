package geometry

import (
	"image"
	"math"
)

// EllipseVertices samples a circle of the given radius around center every degree
// from 0 to 360 inclusive, rounding to the pixel grid (ties to even, as cvRound does)
// and dropping consecutive duplicates. A zero radius yields the center twice.
func EllipseVertices(center image.Point, radius int) ([]image.Point, error) {
	return ArcVertices(center, radius, radius, 0, 360, 1)
}

// ArcVertices approximates an axis-aligned elliptic arc with a polyline, sampling
// every delta degrees between start and end.
func ArcVertices(center image.Point, rx, ry, start, end, delta int) ([]image.Point, error) {
	if rx < 0 || ry < 0 {
		return nil, ErrNegativeRadius
	}
	if delta <= 0 {
		delta = 1
	}
	if start > end {
		start, end = end, start
	}
	for start < 0 {
		start += 360
		end += 360
	}
	for end > 360 {
		end -= 360
		start -= 360
	}
	if end-start > 360 {
		start, end = 0, 360
	}

	pts := make([]image.Point, 0, (end-start)/delta+2)
	for i := start; i < end+delta; i += delta {
		angle := i
		if angle > end {
			angle = end
		}
		if angle < 0 {
			angle += 360
		}
		x := float64(center.X) + float64(rx)*float64(sinTable[450-angle])
		y := float64(center.Y) + float64(ry)*float64(sinTable[angle])
		p := image.Point{X: int(math.RoundToEven(x)), Y: int(math.RoundToEven(y))}
		if len(pts) == 0 || p != pts[len(pts)-1] {
			pts = append(pts, p)
		}
	}

	if len(pts) == 1 {
		pts = append(pts, center)
	}
	return pts, nil
}
