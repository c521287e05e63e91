package conversion

import (
	"fmt"
	"image"

	"cellscope/internal/opencv/safe"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// ConvertToGrayscale converts multi-channel images to single-channel grayscale.
// Single-channel input is cloned.
func ConvertToGrayscale(src *safe.Mat) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "grayscale conversion"); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if src.Channels() == 1 {
		return src.Clone()
	}

	var code gocv.ColorConversionCode
	switch src.Channels() {
	case 3:
		code = gocv.ColorBGRToGray
	case 4:
		code = gocv.ColorBGRAToGray
	default:
		return nil, fmt.Errorf("unsupported channel count: %d", src.Channels())
	}

	if err := safe.ValidateColorConversion(src, code); err != nil {
		return nil, err
	}

	dst := gocv.NewMat()
	gocv.CvtColor(src.GetMat(), &dst, code)
	return safe.Wrap(dst)
}

// ConvertToBGR expands a grayscale Mat to three channels so colored overlays can be drawn.
// Multi-channel input is cloned.
func ConvertToBGR(src *safe.Mat) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "BGR conversion"); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if src.Channels() != 1 {
		return src.Clone()
	}

	if err := safe.ValidateColorConversion(src, gocv.ColorGrayToBGR); err != nil {
		return nil, err
	}

	dst := gocv.NewMat()
	gocv.CvtColor(src.GetMat(), &dst, gocv.ColorGrayToBGR)
	return safe.Wrap(dst)
}

// MatToImage converts a Mat to a standard Go image. Gray Mats become *image.Gray.
func MatToImage(src *safe.Mat) (image.Image, error) {
	if err := safe.ValidateMatForOperation(src, "Mat to image conversion"); err != nil {
		return nil, err
	}

	m := src.GetMat()
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("Mat to image conversion failed: %w", err)
	}
	return img, nil
}

// ImageToMat converts any image.Image to a BGR Mat. Gray images keep a single channel.
func ImageToMat(img image.Image) (*safe.Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	if err := safe.ValidateDimensions(bounds.Dx(), bounds.Dy(), "image to Mat conversion"); err != nil {
		return nil, err
	}

	if gray, ok := img.(*image.Gray); ok {
		return grayImageToMat(gray)
	}

	// imaging.Clone rebases to the origin and normalizes every color model to NRGBA.
	nrgba := imaging.Clone(img)

	// ImageToMatRGB lays pixels out in BGR order, the inverse of Mat.ToImage.
	bgr, err := gocv.ImageToMatRGB(nrgba)
	if err != nil {
		return nil, fmt.Errorf("image to Mat conversion failed: %w", err)
	}
	return safe.Wrap(bgr)
}

// grayImageToMat converts grayscale image to single-channel Mat
func grayImageToMat(img *image.Gray) (*safe.Mat, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf := make([]byte, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		start := img.PixOffset(bounds.Min.X, y)
		buf = append(buf, img.Pix[start:start+width]...)
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC1, buf)
	if err != nil {
		return nil, fmt.Errorf("gray image to Mat conversion failed: %w", err)
	}
	return safe.Wrap(mat)
}
