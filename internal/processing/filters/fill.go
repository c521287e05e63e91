package filters

import (
	"context"
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// FloodFill returns a copy of src where the 4-connected region of pixels equal to
// the seed pixel is set to value.
func FloodFill(src *safe.Mat, seed image.Point, value uint8) (*safe.Mat, error) {
	if err := require8UC1(src, "FloodFill"); err != nil {
		return nil, err
	}

	rows, cols := src.Rows(), src.Cols()
	if !seed.In(image.Rect(0, 0, cols, rows)) {
		return nil, fmt.Errorf("seed %v outside image %dx%d", seed, cols, rows)
	}

	m := src.GetMat()
	if !m.IsContinuous() {
		return nil, fmt.Errorf("FloodFill requires a continuous Mat")
	}
	pix := m.ToBytes()

	target := pix[seed.Y*cols+seed.X]
	if target != value {
		fillRegion(pix, cols, rows, seed, target, value)
	}

	out, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC1, pix)
	if err != nil {
		return nil, fmt.Errorf("failed to build flood-filled Mat: %w", err)
	}
	return safe.Wrap(out)
}

// fillRegion is an iterative stack-based fill; recursion would overflow on large regions.
func fillRegion(pix []byte, cols, rows int, seed image.Point, target, value uint8) {
	stack := []image.Point{seed}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= cols || p.Y < 0 || p.Y >= rows {
			continue
		}
		idx := p.Y*cols + p.X
		if pix[idx] != target {
			continue
		}
		pix[idx] = value

		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
}

// FillHoles closes interior holes of a thresholded figure. The background is flood
// filled from (0,0), inverted, and OR-ed with src, so only regions unreachable from
// the corner become foreground. src must already be binary.
func FillHoles(src *safe.Mat) (*safe.Mat, error) {
	flooded, err := FloodFill(src, image.Point{}, 255)
	if err != nil {
		return nil, fmt.Errorf("FillHoles: %w", err)
	}
	defer flooded.Close()

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(flooded.GetMat(), &inverted)

	dst := gocv.NewMat()
	gocv.BitwiseOr(src.GetMat(), inverted, &dst)
	return safe.Wrap(dst)
}

// HoleFiller is the chain step for FillHoles. It runs when params["fill_holes"] is true.
type HoleFiller struct{}

func NewHoleFiller() *HoleFiller {
	return &HoleFiller{}
}

func (h *HoleFiller) Name() string {
	return "hole_filler"
}

func (h *HoleFiller) ShouldExecute(params map[string]interface{}) bool {
	return boolParam(params, "fill_holes")
}

func (h *HoleFiller) Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return FillHoles(input)
}
