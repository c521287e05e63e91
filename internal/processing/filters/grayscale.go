package filters

import (
	"context"

	"cellscope/internal/opencv/conversion"
	"cellscope/internal/opencv/safe"
)

// ToGray converts src to a single-channel image. Gray input is cloned.
func ToGray(src *safe.Mat) (*safe.Mat, error) {
	return conversion.ConvertToGrayscale(src)
}

// GrayscaleConverter is the chain step for ToGray.
type GrayscaleConverter struct{}

func NewGrayscaleConverter() *GrayscaleConverter {
	return &GrayscaleConverter{}
}

func (g *GrayscaleConverter) Name() string {
	return "grayscale_converter"
}

func (g *GrayscaleConverter) ShouldExecute(params map[string]interface{}) bool {
	return true
}

func (g *GrayscaleConverter) Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return ToGray(input)
}
