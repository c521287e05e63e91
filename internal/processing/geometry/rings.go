package geometry

import (
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"
)

// Ring is the intensity profile read along one sampled circle.
type Ring struct {
	Radius int           `json:"radius" yaml:"radius"`
	Points []image.Point `json:"-" yaml:"-"`
	Values []uint8       `json:"values" yaml:"values"`
	// Truncated is set when sampling stopped at the first vertex outside the image.
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// Mean is the average sampled intensity, or 0 when nothing was sampled.
func (r Ring) Mean() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	var sum int
	for _, v := range r.Values {
		sum += int(v)
	}
	return float64(sum) / float64(len(r.Values))
}

// SampleRings reads img along concentric circles around center with radii
// start, start+step, ... below stop.
func SampleRings(img *safe.Mat, center image.Point, start, stop, step int) ([]Ring, error) {
	if err := safe.ValidateSingleChannel(img, "SampleRings"); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, fmt.Errorf("ring step must be positive, got %d", step)
	}
	if start < 0 {
		return nil, fmt.Errorf("ring start %d: %w", start, ErrNegativeRadius)
	}

	bounds := img.Bounds()
	var rings []Ring
	for radius := start; radius < stop; radius += step {
		vertices, err := EllipseVertices(center, radius)
		if err != nil {
			return nil, err
		}

		ring := Ring{Radius: radius}
		for _, v := range vertices {
			if !v.In(bounds) {
				ring.Truncated = true
				break
			}
			val, err := img.GetUCharAt(v.Y, v.X)
			if err != nil {
				return nil, fmt.Errorf("sample ring %d: %w", radius, err)
			}
			ring.Points = append(ring.Points, v)
			ring.Values = append(ring.Values, val)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}
