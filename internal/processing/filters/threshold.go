package filters

import (
	"context"
	"fmt"

	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/histogram"

	"gocv.io/x/gocv"
)

const (
	defaultAdaptiveBlock = 11
	defaultAdaptiveC     = 2
)

// Threshold sets pixels above thresh to 255 and everything else to 0.
func Threshold(src *safe.Mat, thresh float32) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "Threshold"); err != nil {
		return nil, err
	}

	dst := gocv.NewMat()
	gocv.Threshold(src.GetMat(), &dst, thresh, 255, gocv.ThresholdBinary)
	return safe.Wrap(dst)
}

// AdaptiveThreshold applies an inverted Gaussian adaptive threshold with an 11px
// neighborhood and C = 2, so dark structures on a light field come out white.
func AdaptiveThreshold(src *safe.Mat) (*safe.Mat, error) {
	return AdaptiveThresholdWith(src, defaultAdaptiveBlock, defaultAdaptiveC)
}

// AdaptiveThresholdWith is AdaptiveThreshold with an explicit block size and C.
func AdaptiveThresholdWith(src *safe.Mat, blockSize int, c float32) (*safe.Mat, error) {
	if err := require8UC1(src, "AdaptiveThreshold"); err != nil {
		return nil, err
	}
	if err := safe.ValidateOddKernel(blockSize, "AdaptiveThreshold"); err != nil {
		return nil, err
	}

	dst := gocv.NewMat()
	gocv.AdaptiveThreshold(src.GetMat(), &dst, 255, gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinaryInv, blockSize, c)
	return safe.Wrap(dst)
}

// HistogramThreshold binarizes src at the level method derives from its histogram
// and returns that level.
func HistogramThreshold(src *safe.Mat, method histogram.Method) (*safe.Mat, float64, error) {
	hist, err := histogram.Build(src)
	if err != nil {
		return nil, 0, err
	}
	level, err := histogram.Threshold(hist, method)
	if err != nil {
		return nil, 0, err
	}

	dst, err := Threshold(src, float32(level))
	if err != nil {
		return nil, 0, err
	}
	return dst, level, nil
}

// ThresholdFilter binarizes with the adaptive threshold when params["use_adaptive"]
// is true, otherwise at a global level that is either params["threshold"] or derived
// by params["threshold_method"].
type ThresholdFilter struct{}

func NewThresholdFilter() *ThresholdFilter {
	return &ThresholdFilter{}
}

func (t *ThresholdFilter) Name() string {
	return "threshold_filter"
}

func (t *ThresholdFilter) ShouldExecute(params map[string]interface{}) bool {
	return true
}

func (t *ThresholdFilter) Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	if boolParam(params, "use_adaptive") {
		block := intParam(params, "adaptive_block", defaultAdaptiveBlock)
		c := float32Param(params, "adaptive_c", defaultAdaptiveC)
		return AdaptiveThresholdWith(input, block, c)
	}

	method, _ := params["threshold_method"].(string)
	m, err := histogram.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if m == histogram.MethodFixed {
		return Threshold(input, float32Param(params, "threshold", 127))
	}

	dst, _, err := HistogramThreshold(input, m)
	if err != nil {
		return nil, fmt.Errorf("%s threshold: %w", m, err)
	}
	return dst, nil
}
