// Package spectral computes frequency-domain views of an image.
package spectral

import (
	"errors"
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var ErrTooSmall = errors.New("spectral: matrix must be at least 2x2")

// PowerSpectrum returns |FFT2(img)|^2 as a CV_32F Mat in unshifted layout, with the
// DC term at (0,0).
func PowerSpectrum(img *safe.Mat) (*safe.Mat, error) {
	if err := safe.ValidateSingleChannel(img, "PowerSpectrum"); err != nil {
		return nil, err
	}

	floats := gocv.NewMat()
	defer floats.Close()
	src := img.GetMat()
	src.ConvertTo(&floats, gocv.MatTypeCV32F)

	spectrum := gocv.NewMat()
	defer spectrum.Close()
	gocv.DFT(floats, &spectrum, gocv.DftComplexOutput)

	planes := gocv.Split(spectrum)
	defer func() {
		for _, p := range planes {
			p.Close()
		}
	}()
	if len(planes) != 2 {
		return nil, fmt.Errorf("expected complex DFT output, got %d planes", len(planes))
	}

	re2 := gocv.NewMat()
	defer re2.Close()
	gocv.Multiply(planes[0], planes[0], &re2)

	im2 := gocv.NewMat()
	defer im2.Close()
	gocv.Multiply(planes[1], planes[1], &im2)

	power := gocv.NewMat()
	gocv.Add(re2, im2, &power)
	return safe.Wrap(power)
}

// Quadrants are the four quarters of a matrix after FoldQuadrants.
type Quadrants struct {
	Q1 *safe.Mat // top-right, as is
	Q2 *safe.Mat // bottom-right, flipped up/down
	Q3 *safe.Mat // bottom-left, flipped both ways
	Q4 *safe.Mat // top-left, flipped left/right
}

func (q *Quadrants) Close() {
	for _, m := range []*safe.Mat{q.Q1, q.Q2, q.Q3, q.Q4} {
		if m != nil {
			m.Close()
		}
	}
}

// FoldQuadrants splits m at (rows/2, cols/2) and mirrors the quarters so the left
// half folds onto the right and the bottom onto the top.
func FoldQuadrants(m *safe.Mat) (*Quadrants, error) {
	if err := safe.ValidateMatForOperation(m, "FoldQuadrants"); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("fold %dx%d: %w", cols, rows, ErrTooSmall)
	}
	pr, pc := rows/2, cols/2

	parts := []struct {
		rect image.Rectangle
		flip *int
	}{
		{image.Rect(pc, 0, cols, pr), nil},
		{image.Rect(pc, pr, cols, rows), flipCode(0)},
		{image.Rect(0, pr, pc, rows), flipCode(-1)},
		{image.Rect(0, 0, pc, pr), flipCode(1)},
	}

	out := make([]*safe.Mat, 0, len(parts))
	for _, p := range parts {
		q, err := quadrant(m, p.rect, p.flip)
		if err != nil {
			for _, done := range out {
				done.Close()
			}
			return nil, err
		}
		out = append(out, q)
	}
	return &Quadrants{Q1: out[0], Q2: out[1], Q3: out[2], Q4: out[3]}, nil
}

func flipCode(c int) *int { return &c }

func quadrant(m *safe.Mat, rect image.Rectangle, flip *int) (*safe.Mat, error) {
	q, err := m.Region(rect)
	if err != nil {
		return nil, fmt.Errorf("quadrant %v: %w", rect, err)
	}
	if flip == nil {
		return q, nil
	}
	defer q.Close()

	flipped := gocv.NewMat()
	gocv.Flip(q.GetMat(), &flipped, *flip)
	return safe.Wrap(flipped)
}
