package analysis

import (
	"fmt"

	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/contours"
	"cellscope/internal/processing/geometry"
)

// Overlay draws the main body outline, its centroid, and a connection to every
// off-body centroid onto a color copy of the grayscale input. With no main body
// every contour is outlined.
func (a *Analyzer) Overlay(result *Result) (*safe.Mat, error) {
	if result == nil || result.Report == nil {
		return nil, fmt.Errorf("overlay requires an analysis result")
	}

	d := a.cfg.Drawing
	contourStyle := geometry.Style{Color: d.ContourColor.RGBA(), Size: d.ContourThickness}
	centroidStyle := geometry.Style{Color: d.CentroidColor.RGBA(), Size: d.CentroidRadius}
	lineStyle := geometry.Style{Color: d.LineColor.RGBA(), Size: d.LineThickness}

	body := result.Report.MainBody
	idx := contours.DrawAll
	if body != nil {
		idx = body.Index
	}

	out, err := contours.DrawStyled(result.Mask, result.Gray, idx, contourStyle)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return out, nil
	}

	center := body.Centroid.Image()
	for _, off := range result.Report.OffBody {
		if err := geometry.DrawConnectionStyled(out, center, off.Centroid.Image(), lineStyle); err != nil {
			out.Close()
			return nil, err
		}
	}
	if err := geometry.DrawCentroidStyled(out, center, centroidStyle); err != nil {
		out.Close()
		return nil, err
	}
	return out, nil
}

// Crop returns the grayscale input cropped around the main body.
func (a *Analyzer) Crop(result *Result) (*safe.Mat, error) {
	if result == nil || result.Report == nil || result.Report.MainBody == nil {
		return nil, fmt.Errorf("crop requires a main body")
	}
	c, err := contours.Select(result.contours, result.Report.MainBody.Index)
	if err != nil {
		return nil, err
	}
	return geometry.CropAroundCentroid(result.Gray, c)
}
