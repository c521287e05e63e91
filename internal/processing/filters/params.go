package filters

import (
	"cellscope/internal/config"
	"cellscope/internal/processing/chain"
)

// Params flattens the filter config into the map the chain steps read.
func Params(cfg config.FilterConfig) map[string]interface{} {
	return map[string]interface{}{
		"blur_kernel":      cfg.BlurKernel,
		"close_kernel":     cfg.CloseKernel,
		"threshold":        cfg.Threshold,
		"threshold_method": cfg.ThresholdMethod,
		"use_adaptive":     cfg.UseAdaptive,
		"adaptive_block":   cfg.AdaptiveBlock,
		"adaptive_c":       cfg.AdaptiveC,
		"fill_holes":       cfg.FillHoles,
	}
}

// CellSteps is the mask pipeline: gray, background subtraction, threshold, closing,
// hole fill.
func CellSteps() []chain.ProcessingStep {
	return append([]chain.ProcessingStep{NewGrayscaleConverter()}, MaskSteps()...)
}

// MaskSteps is CellSteps for input that is already single-channel gray.
func MaskSteps() []chain.ProcessingStep {
	return []chain.ProcessingStep{
		NewBackgroundSubtractor(),
		NewThresholdFilter(),
		NewMorphologyFilter(),
		NewHoleFiller(),
	}
}

// NewCellChain builds the mask pipeline as a chain.
func NewCellChain() *chain.ProcessingChain {
	return chain.NewProcessingChain(CellSteps())
}

// NewMaskChain builds the mask pipeline for gray input.
func NewMaskChain() *chain.ProcessingChain {
	return chain.NewProcessingChain(MaskSteps())
}
