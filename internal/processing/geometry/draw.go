package geometry

import (
	"image"
	"image/color"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Style sets the color and size (radius or thickness) of an overlay mark.
type Style struct {
	Color color.RGBA
	Size  int
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	DefaultCentroidStyle   = Style{Color: white, Size: 10}
	DefaultConnectionStyle = Style{Color: white, Size: 2}
)

// DrawCentroid marks p on dst with a filled white dot.
func DrawCentroid(dst *safe.Mat, p image.Point) error {
	return DrawCentroidStyled(dst, p, DefaultCentroidStyle)
}

func DrawCentroidStyled(dst *safe.Mat, p image.Point, style Style) error {
	if err := safe.ValidateMatForOperation(dst, "DrawCentroid"); err != nil {
		return err
	}
	return dst.Update(func(m *gocv.Mat) {
		gocv.Circle(m, p, style.Size, style.Color, -1)
	})
}

// DrawConnection draws a white line from p1 to p2 on dst.
func DrawConnection(dst *safe.Mat, p1, p2 image.Point) error {
	return DrawConnectionStyled(dst, p1, p2, DefaultConnectionStyle)
}

func DrawConnectionStyled(dst *safe.Mat, p1, p2 image.Point, style Style) error {
	if err := safe.ValidateMatForOperation(dst, "DrawConnection"); err != nil {
		return err
	}
	return dst.Update(func(m *gocv.Mat) {
		gocv.Line(m, p1, p2, style.Color, style.Size)
	})
}
