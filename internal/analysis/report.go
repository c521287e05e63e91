package analysis

import (
	"encoding/json"
	"image"
	"time"

	"cellscope/internal/processing/geometry"

	"gopkg.in/yaml.v3"
)

// Point is an image coordinate with lowercase keys in encoded reports.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func pointFrom(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

type Box struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func boxFrom(r image.Rectangle) Box {
	return Box{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Body describes the main organism outline.
type Body struct {
	Index       int     `json:"index" yaml:"index"`
	Area        float64 `json:"area" yaml:"area"`
	Perimeter   float64 `json:"perimeter" yaml:"perimeter"`
	Centroid    Point   `json:"centroid" yaml:"centroid"`
	ShapeFactor float64 `json:"shape_factor" yaml:"shape_factor"`
	Box         *Box    `json:"box,omitempty" yaml:"box,omitempty"`
}

// OffBody is a contour other than the main body, located relative to it.
type OffBody struct {
	Index    int     `json:"index" yaml:"index"`
	Area     float64 `json:"area" yaml:"area"`
	Centroid Point   `json:"centroid" yaml:"centroid"`
	Distance float64 `json:"distance" yaml:"distance"`
}

type Report struct {
	Width        int             `json:"width" yaml:"width"`
	Height       int             `json:"height" yaml:"height"`
	ContourCount int             `json:"contour_count" yaml:"contour_count"`
	MainBody     *Body           `json:"main_body,omitempty" yaml:"main_body,omitempty"`
	OffBody      []OffBody       `json:"off_body,omitempty" yaml:"off_body,omitempty"`
	Rings        []geometry.Ring `json:"rings,omitempty" yaml:"rings,omitempty"`
	Elapsed      time.Duration   `json:"elapsed_ns" yaml:"elapsed"`
}

func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
