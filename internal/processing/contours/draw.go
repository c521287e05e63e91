package contours

import (
	"fmt"
	"image"
	"image/color"

	"cellscope/internal/opencv/conversion"
	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/geometry"

	"gocv.io/x/gocv"
)

// DrawAll draws every contour when passed as the index.
const DrawAll = -1

var DefaultStyle = geometry.Style{Color: color.RGBA{R: 128, G: 255, B: 0, A: 255}, Size: 5}

// Draw finds the contours of procImg and draws contour idx (DrawAll for every one)
// onto a color copy of dst. dst is not modified; the caller owns the result.
func Draw(procImg, dst *safe.Mat, idx int) (*safe.Mat, error) {
	return DrawStyled(procImg, dst, idx, DefaultStyle)
}

func DrawStyled(procImg, dst *safe.Mat, idx int, style geometry.Style) (*safe.Mat, error) {
	cs, err := Find(procImg)
	if err != nil {
		return nil, fmt.Errorf("draw contours: %w", err)
	}
	if idx != DrawAll && (idx < 0 || idx >= len(cs)) {
		return nil, fmt.Errorf("contour index %d out of range [0,%d)", idx, len(cs))
	}

	out, err := conversion.ConvertToBGR(dst)
	if err != nil {
		return nil, fmt.Errorf("draw contours: %w", err)
	}

	if len(cs) == 0 {
		return out, nil
	}

	points := make([][]image.Point, len(cs))
	for i, c := range cs {
		points[i] = c
	}
	pv := gocv.NewPointsVectorFromPoints(points)
	defer pv.Close()

	if err := out.Update(func(m *gocv.Mat) {
		gocv.DrawContours(m, pv, idx, style.Color, style.Size)
	}); err != nil {
		out.Close()
		return nil, err
	}
	return out, nil
}
