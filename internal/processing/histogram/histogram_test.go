package histogram

import (
	"testing"

	"cellscope/internal/opencv/safe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func bimodal() []int {
	hist := make([]int, 256)
	hist[20] = 100
	hist[30] = 50
	hist[200] = 80
	hist[210] = 40
	return hist
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"", MethodFixed, false},
		{"fixed", MethodFixed, false},
		{"otsu", MethodOtsu, false},
		{"triangle", MethodTriangle, false},
		{"kittler", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	m, err := safe.Wrap(gocv.NewMatWithSizeFromScalar(gocv.NewScalar(7, 0, 0, 0), 4, 5, gocv.MatTypeCV8UC1))
	require.NoError(t, err)
	defer m.Close()
	require.NoError(t, m.SetUCharAt(0, 0, 250))

	hist, err := Build(m)
	require.NoError(t, err)
	require.Len(t, hist, 256)
	assert.Equal(t, 19, hist[7])
	assert.Equal(t, 1, hist[250])
}

func TestBuild_RejectsColor(t *testing.T) {
	m, err := safe.NewMat(4, 4, gocv.MatTypeCV8UC3)
	require.NoError(t, err)
	defer m.Close()

	_, err = Build(m)
	assert.Error(t, err)
}

func TestOtsu_SeparatesModes(t *testing.T) {
	th := Otsu(bimodal())
	assert.GreaterOrEqual(t, th, 30.0)
	assert.Less(t, th, 200.0)
}

func TestMeanAndMedian(t *testing.T) {
	hist := make([]int, 256)
	hist[10] = 1
	hist[20] = 1
	hist[90] = 2

	assert.InDelta(t, 52.5, Mean(hist), 1e-9)
	assert.InDelta(t, 20, Median(hist), 1e-9)
}

func TestTriangle_WithinOccupiedRange(t *testing.T) {
	hist := make([]int, 256)
	for i := 10; i < 60; i++ {
		hist[i] = 100 - (i-10)*2
	}
	hist[200] = 3

	th := Triangle(hist)
	assert.GreaterOrEqual(t, th, 10.0)
	assert.LessOrEqual(t, th, 200.0)
}

func TestEmptyHistogram(t *testing.T) {
	empty := make([]int, 256)
	for _, m := range []Method{MethodOtsu, MethodMean, MethodMedian, MethodTriangle} {
		th, err := Threshold(empty, m)
		require.NoError(t, err)
		assert.Equal(t, emptyThreshold, th, string(m))
	}

	_, err := Threshold(empty, MethodFixed)
	assert.Error(t, err)
}
