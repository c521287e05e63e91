package filters

import (
	"context"
	"image"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// BackgroundSubtract removes slowly varying illumination: src - GaussianBlur(src, k).
// Sigma is derived from the kernel size; the subtraction saturates at zero.
func BackgroundSubtract(src *safe.Mat, kSize int) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "BackgroundSubtract"); err != nil {
		return nil, err
	}
	if err := safe.ValidateOddKernel(kSize, "BackgroundSubtract"); err != nil {
		return nil, err
	}

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(src.GetMat(), &blur, image.Point{X: kSize, Y: kSize}, 0, 0, gocv.BorderDefault)

	dst := gocv.NewMat()
	gocv.Subtract(src.GetMat(), blur, &dst)
	return safe.Wrap(dst)
}

// BackgroundSubtractor is the chain step for BackgroundSubtract. It runs when
// params["blur_kernel"] is a positive int.
type BackgroundSubtractor struct{}

func NewBackgroundSubtractor() *BackgroundSubtractor {
	return &BackgroundSubtractor{}
}

func (b *BackgroundSubtractor) Name() string {
	return "background_subtractor"
}

func (b *BackgroundSubtractor) ShouldExecute(params map[string]interface{}) bool {
	return intParam(params, "blur_kernel", 0) > 0
}

func (b *BackgroundSubtractor) Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return BackgroundSubtract(input, intParam(params, "blur_kernel", 0))
}
