package contours

import (
	"image"
	"image/color"
	"testing"

	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func square(x, y, side int) geometry.Contour {
	return geometry.Contour{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}
}

// blobs draws filled white rectangles on a black single-channel image.
func blobs(t *testing.T, rows, cols int, rects ...image.Rectangle) *safe.Mat {
	t.Helper()
	m, err := safe.NewMat(rows, cols, gocv.MatTypeCV8UC1)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	require.NoError(t, m.Update(func(dst *gocv.Mat) {
		for _, r := range rects {
			gocv.Rectangle(dst, r, white, -1)
		}
	}))
	return m
}

func TestFind(t *testing.T) {
	img := blobs(t, 100, 100, image.Rect(10, 10, 30, 30), image.Rect(50, 50, 60, 60))

	cs, err := Find(img)
	require.NoError(t, err)
	require.Len(t, cs, 2)

	areas := Areas(cs)
	assert.ElementsMatch(t, []float64{361, 81}, areas)

	idx, ok := Largest(cs)
	require.True(t, ok)
	assert.InDelta(t, 361, areas[idx], 1e-9)
}

func TestFind_Empty(t *testing.T) {
	img := blobs(t, 20, 20)

	cs, err := Find(img)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestFind_RejectsColor(t *testing.T) {
	m, err := safe.NewMat(10, 10, gocv.MatTypeCV8UC3)
	require.NoError(t, err)
	defer m.Close()

	_, err = Find(m)
	assert.Error(t, err)
}

func TestLargestBelow(t *testing.T) {
	tests := []struct {
		name    string
		cs      []geometry.Contour
		limit   float64
		wantIdx int
		wantOK  bool
	}{
		{"empty", nil, MaxArea, 0, false},
		{"picks biggest", []geometry.Contour{square(0, 0, 2), square(0, 0, 5), square(0, 0, 3)}, MaxArea, 1, true},
		{"first wins tie", []geometry.Contour{square(0, 0, 4), square(10, 10, 4)}, MaxArea, 0, true},
		{"skips oversized", []geometry.Contour{square(0, 0, 10), square(0, 0, 3)}, 50, 1, true},
		{"limit is exclusive", []geometry.Contour{square(0, 0, 5), square(0, 0, 2)}, 25, 1, true},
		{"all oversized", []geometry.Contour{square(0, 0, 10), square(0, 0, 20)}, 50, 0, false},
		{"sentinel frame", []geometry.Contour{square(0, 0, 2000), square(0, 0, 10)}, MaxArea, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := LargestBelow(tt.cs, tt.limit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIdx, idx)
			if ok {
				assert.Less(t, geometry.Area(tt.cs[idx]), tt.limit)
			}
		})
	}
}

func TestNonMainbody(t *testing.T) {
	cs := []geometry.Contour{square(0, 0, 1), square(0, 0, 2), square(0, 0, 3)}

	assert.Equal(t, []int{0, 2}, NonMainbody(cs, 1))
	assert.Equal(t, []int{0, 1, 2}, NonMainbody(cs, 7))
	assert.Empty(t, NonMainbody(nil, 0))
}

func TestSelect(t *testing.T) {
	cs := []geometry.Contour{square(0, 0, 1)}

	c, err := Select(cs, 0)
	require.NoError(t, err)
	assert.Equal(t, cs[0], c)

	_, err = Select(cs, 1)
	assert.Error(t, err)
}

func TestDraw(t *testing.T) {
	proc := blobs(t, 60, 60, image.Rect(10, 10, 40, 40))
	dst, err := safe.NewMat(60, 60, gocv.MatTypeCV8UC1)
	require.NoError(t, err)
	defer dst.Close()

	out, err := Draw(proc, dst, DrawAll)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, 3, out.Channels())
	assert.Equal(t, 1, dst.Channels(), "destination untouched")

	// gocv writes RGBA colors in BGR order.
	outMat := out.GetMat()
	edge := outMat.GetVecbAt(20, 10)
	assert.Equal(t, gocv.Vecb{0, 255, 128}, edge)

	center := outMat.GetVecbAt(25, 25)
	assert.Equal(t, gocv.Vecb{0, 0, 0}, center)
}

func TestDraw_IndexOutOfRange(t *testing.T) {
	proc := blobs(t, 30, 30, image.Rect(5, 5, 10, 10))
	dst, err := safe.NewMat(30, 30, gocv.MatTypeCV8UC1)
	require.NoError(t, err)
	defer dst.Close()

	_, err = Draw(proc, dst, 3)
	assert.Error(t, err)
}
