// Package contours extracts object outlines from binary images and picks the main
// body among them.
package contours

import (
	"fmt"

	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/geometry"

	"gocv.io/x/gocv"
)

// MaxArea excludes outlines as large as the whole frame, which thresholding can
// produce around the image border.
const MaxArea = 4_000_000

// Find traces every contour in a single-channel binary image, keeping the full
// nesting hierarchy and compressing straight runs to their end points.
func Find(img *safe.Mat) ([]geometry.Contour, error) {
	if err := safe.ValidateSingleChannel(img, "FindContours"); err != nil {
		return nil, err
	}

	found := gocv.FindContours(img.GetMat(), gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer found.Close()

	points := found.ToPoints()
	cs := make([]geometry.Contour, len(points))
	for i, p := range points {
		cs[i] = geometry.Contour(p)
	}
	return cs, nil
}

// Areas returns the area of each contour, index-aligned with cs.
func Areas(cs []geometry.Contour) []float64 {
	areas := make([]float64, len(cs))
	for i, c := range cs {
		areas[i] = geometry.Area(c)
	}
	return areas
}

// Largest returns the index of the biggest contour with area below MaxArea.
func Largest(cs []geometry.Contour) (int, bool) {
	return LargestBelow(cs, MaxArea)
}

// LargestBelow returns the index of the biggest contour whose area is strictly
// below limit. Ties keep the earliest index. ok is false when cs is empty or every
// contour reaches the limit.
func LargestBelow(cs []geometry.Contour, limit float64) (idx int, ok bool) {
	best := -1
	var bestArea float64
	for i, area := range Areas(cs) {
		if area >= limit {
			continue
		}
		if best < 0 || area > bestArea {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// NonMainbody returns the indices of every contour except biggest.
func NonMainbody(cs []geometry.Contour, biggest int) []int {
	others := make([]int, 0, len(cs))
	for i := range cs {
		if i != biggest {
			others = append(others, i)
		}
	}
	return others
}

// Select returns cs[idx] or an error when idx is out of range.
func Select(cs []geometry.Contour, idx int) (geometry.Contour, error) {
	if idx < 0 || idx >= len(cs) {
		return nil, fmt.Errorf("contour index %d out of range [0,%d)", idx, len(cs))
	}
	return cs[idx], nil
}
