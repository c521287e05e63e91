package geometry

import (
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"
)

// BoxAroundCentroid returns a crop box for an asymmetric object that is biased
// toward its mass center. The minimum enclosing circle radius is grown by the larger
// signed offset between the centroid and the circle center, a circle of that radius
// is sampled around the centroid, and the bounding rectangle of the samples is
// returned.
//
// Near an image edge the box may extend past the image; CropToBox clips it.
func BoxAroundCentroid(c Contour) (image.Rectangle, error) {
	x, y, radius, err := MinEnclosingCircle(c)
	if err != nil {
		return image.Rectangle{}, err
	}

	centroid := Centroid(c)
	circleCenter := image.Point{X: int(x), Y: int(y)}

	offsetX := float64(centroid.X - circleCenter.X)
	offsetY := float64(centroid.Y - circleCenter.Y)

	expanded := radius + offsetY
	if offsetX > offsetY {
		expanded = radius + offsetX
	}
	if expanded < 0 {
		return image.Rectangle{}, fmt.Errorf("expanded radius %.2f: %w", expanded, ErrNegativeRadius)
	}

	vertices, err := EllipseVertices(centroid, int(expanded))
	if err != nil {
		return image.Rectangle{}, err
	}
	return BoundingRect(vertices), nil
}

// CropToBox copies the dx-by-dy box whose top-left corner is (x, y), clipped to img.
func CropToBox(img *safe.Mat, x, dx, y, dy int) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(img, "CropToBox"); err != nil {
		return nil, err
	}

	box := image.Rect(x, y, x+dx, y+dy).Intersect(img.Bounds())
	if box.Empty() {
		return nil, fmt.Errorf("crop box (%d,%d %dx%d) does not overlap image %v", x, y, dx, dy, img.Bounds())
	}
	return img.Region(box)
}

// CropAroundCentroid crops img to BoxAroundCentroid(c).
func CropAroundCentroid(img *safe.Mat, c Contour) (*safe.Mat, error) {
	box, err := BoxAroundCentroid(c)
	if err != nil {
		return nil, err
	}
	return CropToBox(img, box.Min.X, box.Dx(), box.Min.Y, box.Dy())
}
