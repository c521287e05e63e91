package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"math"
	"testing"

	"cellscope/internal/config"
	"cellscope/internal/logger"
	"cellscope/internal/opencv/safe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
	"gopkg.in/yaml.v3"
)

var cellGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// specimen is a dim color frame with a large bright cell at (100,100) and a small
// satellite at (160,40).
func specimen(t *testing.T) *safe.Mat {
	t.Helper()
	m, err := safe.Wrap(gocv.NewMatWithSizeFromScalar(gocv.NewScalar(40, 40, 40, 0), 200, 200, gocv.MatTypeCV8UC3))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	require.NoError(t, m.Update(func(dst *gocv.Mat) {
		gocv.Circle(dst, image.Pt(100, 100), 30, cellGray, -1)
		gocv.Circle(dst, image.Pt(160, 40), 6, cellGray, -1)
	}))
	return m
}

func newAnalyzer(t *testing.T, cfg *config.Config) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	a, err := NewAnalyzer(cfg, logger.NewZerolog(&buf, zerolog.DebugLevel))
	require.NoError(t, err)
	return a, &buf
}

func TestAnalyzer_Run(t *testing.T) {
	cfg := config.Default()
	cfg.Rings = config.RingConfig{Start: 0, Stop: 20, Step: 10}
	a, logs := newAnalyzer(t, cfg)

	result, err := a.Run(context.Background(), specimen(t))
	require.NoError(t, err)
	defer result.Close()

	r := result.Report
	assert.Equal(t, 200, r.Width)
	assert.Equal(t, 200, r.Height)
	assert.Equal(t, 2, r.ContourCount)

	require.NotNil(t, r.MainBody)
	body := r.MainBody
	assert.InDelta(t, 100, body.Centroid.X, 2)
	assert.InDelta(t, 100, body.Centroid.Y, 2)
	assert.InEpsilon(t, math.Pi*30*30, body.Area, 0.15)
	assert.Greater(t, body.ShapeFactor, 0.8)
	assert.LessOrEqual(t, body.ShapeFactor, 1.05)
	require.NotNil(t, body.Box)
	assert.True(t, body.Centroid.Image().In(body.Box.Rect()))

	require.Len(t, r.OffBody, 1)
	off := r.OffBody[0]
	assert.NotEqual(t, body.Index, off.Index)
	assert.InDelta(t, 160, off.Centroid.X, 2)
	assert.InDelta(t, 40, off.Centroid.Y, 2)
	assert.InDelta(t, math.Hypot(60, 60), off.Distance, 3)

	require.Len(t, r.Rings, 2)
	for _, ring := range r.Rings {
		assert.False(t, ring.Truncated)
		assert.InDelta(t, 200, ring.Mean(), 1)
	}

	assert.Greater(t, int64(r.Elapsed), int64(0))
	assert.Contains(t, logs.String(), "analysis completed")

	assert.Equal(t, 1, result.Mask.Channels())
	assert.Equal(t, 1, result.Gray.Channels())
}

func TestAnalyzer_NoMainBody(t *testing.T) {
	a, logs := newAnalyzer(t, nil)

	blank, err := safe.NewMat(50, 50, gocv.MatTypeCV8UC1)
	require.NoError(t, err)
	defer blank.Close()

	result, err := a.Run(context.Background(), blank)
	require.NoError(t, err)
	defer result.Close()

	assert.Zero(t, result.Report.ContourCount)
	assert.Nil(t, result.Report.MainBody)
	assert.Empty(t, result.Report.OffBody)
	assert.Contains(t, logs.String(), "no main body found")

	overlay, err := a.Overlay(result)
	require.NoError(t, err)
	defer overlay.Close()
	assert.Equal(t, 3, overlay.Channels())

	_, err = a.Crop(result)
	assert.Error(t, err)
}

func TestAnalyzer_Cancelled(t *testing.T) {
	a, _ := newAnalyzer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Run(ctx, specimen(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzer_RejectsInvalidInput(t *testing.T) {
	a, _ := newAnalyzer(t, nil)

	_, err := a.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestNewAnalyzer_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Filters.BlurKernel = 4

	_, err := NewAnalyzer(cfg, nil)
	assert.Error(t, err)
}

func TestAnalyzer_OverlayAndCrop(t *testing.T) {
	a, _ := newAnalyzer(t, nil)

	result, err := a.Run(context.Background(), specimen(t))
	require.NoError(t, err)
	defer result.Close()
	require.NotNil(t, result.Report.MainBody)

	overlay, err := a.Overlay(result)
	require.NoError(t, err)
	defer overlay.Close()

	assert.Equal(t, 3, overlay.Channels())
	center := result.Report.MainBody.Centroid
	overlayMat := overlay.GetMat()
	assert.Equal(t, gocv.Vecb{255, 255, 255}, overlayMat.GetVecbAt(center.Y, center.X))

	crop, err := a.Crop(result)
	require.NoError(t, err)
	defer crop.Close()

	box := result.Report.MainBody.Box.Rect().Intersect(result.Gray.Bounds())
	assert.Equal(t, box.Dx(), crop.Cols())
	assert.Equal(t, box.Dy(), crop.Rows())
}

func TestAnalyzer_RunImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 120, 120))
	for i := range img.Pix {
		img.Pix[i] = 40
	}
	for y := 40; y < 80; y++ {
		for x := 40; x < 80; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	a, _ := newAnalyzer(t, nil)
	result, err := a.RunImage(context.Background(), img)
	require.NoError(t, err)
	defer result.Close()

	require.NotNil(t, result.Report.MainBody)
	assert.InDelta(t, 59, result.Report.MainBody.Centroid.X, 2)
	assert.InDelta(t, 59, result.Report.MainBody.Centroid.Y, 2)
}

func TestReport_Encoding(t *testing.T) {
	r := &Report{
		Width:        10,
		Height:       20,
		ContourCount: 1,
		MainBody: &Body{
			Index:       0,
			Area:        12.5,
			Centroid:    Point{X: 3, Y: 4},
			ShapeFactor: 0.9,
			Box:         &Box{X: 1, Y: 2, Width: 5, Height: 6},
		},
	}

	data, err := r.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 1, decoded["contour_count"])
	body := decoded["main_body"].(map[string]interface{})
	assert.EqualValues(t, 0.9, body["shape_factor"])
	assert.NotContains(t, decoded, "off_body")

	data, err = r.YAML()
	require.NoError(t, err)

	var back Report
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, r.MainBody.Centroid, back.MainBody.Centroid)
	assert.Equal(t, *r.MainBody.Box, *back.MainBody.Box)
}

func TestNewAnalyzer_LogLevelFromConfig(t *testing.T) {
	var buf bytes.Buffer
	prev := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = prev })

	tests := []struct {
		level    string
		shown    []string
		filtered []string
	}{
		{"warn", []string{"no main body found"}, []string{"analysis completed", "analysis started"}},
		{"info", []string{"no main body found", "analysis completed"}, []string{"analysis started"}},
		{"debug", []string{"analysis started", "analysis completed"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			cfg := config.Default()
			cfg.LogLevel = tt.level

			a, err := NewAnalyzer(cfg, nil)
			require.NoError(t, err)

			blank, err := safe.NewMat(40, 40, gocv.MatTypeCV8UC1)
			require.NoError(t, err)
			defer blank.Close()

			result, err := a.Run(context.Background(), blank)
			require.NoError(t, err)
			result.Close()

			out := buf.String()
			for _, msg := range tt.shown {
				assert.Contains(t, out, msg)
			}
			for _, msg := range tt.filtered {
				assert.NotContains(t, out, msg)
			}
		})
	}
}

func TestAnalyzer_ChainStartsFromGray(t *testing.T) {
	a, logs := newAnalyzer(t, nil)

	assert.NotContains(t, a.chain.GetStepNames(), "grayscale_converter")
	assert.Equal(t, "background_subtractor", a.chain.GetStepNames()[0])

	result, err := a.Run(context.Background(), specimen(t))
	require.NoError(t, err)
	defer result.Close()

	assert.NotContains(t, logs.String(), "grayscale_converter")
}
