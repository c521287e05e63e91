// Package filters wraps the OpenCV transforms used to turn a raw micrograph into a
// binary mask: grayscale, background subtraction, thresholding, closing and hole filling.
//
// Every function returns a new Mat owned by the caller; inputs are never modified.
package filters

import (
	"context"
	"errors"
	"fmt"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// ErrNot8Bit is returned by operations that only accept 8-bit single-channel masks.
var ErrNot8Bit = errors.New("filters: expected an 8-bit single-channel image")

func require8UC1(src *safe.Mat, operation string) error {
	if err := safe.ValidateSingleChannel(src, operation); err != nil {
		return err
	}
	if src.Type() != gocv.MatTypeCV8UC1 {
		return fmt.Errorf("%s: %w", operation, ErrNot8Bit)
	}
	return nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func intParam(params map[string]interface{}, key string, def int) int {
	if val, ok := params[key].(int); ok {
		return val
	}
	return def
}

func float32Param(params map[string]interface{}, key string, def float32) float32 {
	switch val := params[key].(type) {
	case float32:
		return val
	case float64:
		return float32(val)
	case int:
		return float32(val)
	}
	return def
}

func boolParam(params map[string]interface{}, key string) bool {
	val, ok := params[key].(bool)
	return ok && val
}
