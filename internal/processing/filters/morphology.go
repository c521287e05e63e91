package filters

import (
	"context"
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Close applies a morphological closing (dilate then erode) with a kSize x kSize
// rectangular kernel.
func Close(src *safe.Mat, kSize int) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "Close"); err != nil {
		return nil, err
	}
	if kSize <= 0 {
		return nil, fmt.Errorf("kernel size %d must be positive for operation: Close", kSize)
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: kSize, Y: kSize})
	defer kernel.Close()

	dst := gocv.NewMat()
	gocv.MorphologyEx(src.GetMat(), &dst, gocv.MorphClose, kernel)
	return safe.Wrap(dst)
}

// MorphologyFilter is the chain step for Close. It runs when params["close_kernel"]
// is a positive int.
type MorphologyFilter struct{}

func NewMorphologyFilter() *MorphologyFilter {
	return &MorphologyFilter{}
}

func (m *MorphologyFilter) Name() string {
	return "morphology_filter"
}

func (m *MorphologyFilter) ShouldExecute(params map[string]interface{}) bool {
	return intParam(params, "close_kernel", 0) > 0
}

func (m *MorphologyFilter) Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return Close(input, intParam(params, "close_kernel", 0))
}
