// Package histogram builds gray-level histograms and derives global thresholds
// from them.
package histogram

import (
	"fmt"
	"math"

	"cellscope/internal/opencv/safe"

	"gocv.io/x/gocv"
)

type Method string

const (
	MethodFixed    Method = "fixed"
	MethodOtsu     Method = "otsu"
	MethodMean     Method = "mean"
	MethodMedian   Method = "median"
	MethodTriangle Method = "triangle"
)

// emptyThreshold is returned for a histogram with no samples.
const emptyThreshold = 127.5

// ParseMethod accepts the config spelling of a method. The empty string is MethodFixed.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case "":
		return MethodFixed, nil
	case MethodFixed, MethodOtsu, MethodMean, MethodMedian, MethodTriangle:
		return m, nil
	}
	return "", fmt.Errorf("unknown threshold method %q", s)
}

// Build counts the 256 gray levels of an 8-bit single-channel image.
func Build(src *safe.Mat) ([]int, error) {
	if err := safe.ValidateSingleChannel(src, "histogram"); err != nil {
		return nil, err
	}
	if src.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("histogram requires an 8-bit image, got type %v", src.Type())
	}

	hist := make([]int, 256)
	m := src.GetMat()
	if m.IsContinuous() {
		for _, v := range m.ToBytes() {
			hist[v]++
		}
		return hist, nil
	}

	rows, cols := src.Rows(), src.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v, err := src.GetUCharAt(y, x); err == nil {
				hist[v]++
			}
		}
	}
	return hist, nil
}

// Threshold derives a global threshold from hist. MethodFixed has no histogram
// rule and is rejected.
func Threshold(hist []int, method Method) (float64, error) {
	switch method {
	case MethodOtsu:
		return Otsu(hist), nil
	case MethodMean:
		return Mean(hist), nil
	case MethodMedian:
		return Median(hist), nil
	case MethodTriangle:
		return Triangle(hist), nil
	}
	return 0, fmt.Errorf("threshold method %q is not histogram based", method)
}

func total(hist []int) int {
	n := 0
	for _, c := range hist {
		n += c
	}
	return n
}

// Otsu picks the level that maximizes the between-class variance.
func Otsu(hist []int) float64 {
	n := total(hist)
	if n == 0 {
		return emptyThreshold
	}

	sum := 0.0
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	sumB := 0.0
	wB := 0
	maxVariance := 0.0
	best := emptyThreshold

	for i, count := range hist {
		wB += count
		if wB == 0 {
			continue
		}

		wF := n - wB
		if wF == 0 {
			break
		}

		sumB += float64(i) * float64(count)
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)

		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > maxVariance {
			maxVariance = between
			best = float64(i)
		}
	}

	return best
}

func Mean(hist []int) float64 {
	n := total(hist)
	if n == 0 {
		return emptyThreshold
	}

	weighted := 0.0
	for i, count := range hist {
		weighted += float64(i) * float64(count)
	}
	return weighted / float64(n)
}

// Median is the first level at which the cumulative count reaches half the samples.
func Median(hist []int) float64 {
	n := total(hist)
	if n == 0 {
		return emptyThreshold
	}

	half := n / 2
	cum := 0
	for i, count := range hist {
		cum += count
		if cum >= half {
			return float64(i)
		}
	}
	return emptyThreshold
}

// Triangle draws a line from the histogram peak to the far end of the occupied
// range and picks the level farthest below it.
func Triangle(hist []int) float64 {
	if total(hist) == 0 {
		return emptyThreshold
	}

	maxCount, peak := 0, 0
	for i, count := range hist {
		if count > maxCount {
			maxCount, peak = count, i
		}
	}

	left, right := 0, len(hist)-1
	for i := range hist {
		if hist[i] > 0 {
			left = i
			break
		}
	}
	for i := len(hist) - 1; i >= 0; i-- {
		if hist[i] > 0 {
			right = i
			break
		}
	}

	far := right
	if peak-left > right-peak {
		far = left
	}

	x1, y1 := float64(peak), float64(maxCount)
	x2, y2 := float64(far), float64(hist[far])
	if x1 == x2 {
		return float64(peak)
	}

	norm := math.Hypot(y2-y1, x2-x1)
	best, maxDistance := float64(peak), 0.0
	for i := min(peak, far); i <= max(peak, far); i++ {
		d := math.Abs((y2-y1)*float64(i)-(x2-x1)*float64(hist[i])+x2*y1-y2*x1) / norm
		if d > maxDistance {
			maxDistance, best = d, float64(i)
		}
	}
	return best
}
