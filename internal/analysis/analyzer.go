// Package analysis runs the cell pipeline end to end: mask extraction, contour
// selection, and measurement of the main body and its satellites.
package analysis

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"cellscope/internal/config"
	"cellscope/internal/logger"
	"cellscope/internal/opencv/conversion"
	"cellscope/internal/opencv/safe"
	"cellscope/internal/processing/chain"
	"cellscope/internal/processing/contours"
	"cellscope/internal/processing/filters"
	"cellscope/internal/processing/geometry"
)

const component = "Analyzer"

// logOutput receives the console log when NewAnalyzer is given no logger.
var logOutput io.Writer = os.Stderr

type Analyzer struct {
	cfg    *config.Config
	logger logger.Logger
	chain  *chain.ProcessingChain
	params map[string]interface{}
}

func NewAnalyzer(cfg *config.Config, log logger.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		var err error
		if log, err = cfg.NewLogger(logOutput); err != nil {
			return nil, err
		}
	}

	c := filters.NewMaskChain()
	c.SetLogger(log)

	return &Analyzer{
		cfg:    cfg,
		logger: log,
		chain:  c,
		params: filters.Params(cfg.Filters),
	}, nil
}

// Result carries the report and the images it was measured on. The caller must
// Close it.
type Result struct {
	Report *Report
	Gray   *safe.Mat
	Mask   *safe.Mat

	contours []geometry.Contour
}

func (r *Result) Close() {
	if r.Gray != nil {
		r.Gray.Close()
	}
	if r.Mask != nil {
		r.Mask.Close()
	}
}

// RunImage converts img and runs the analysis on it.
func (a *Analyzer) RunImage(ctx context.Context, img image.Image) (*Result, error) {
	m, err := conversion.ImageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("image conversion failed: %w", err)
	}
	defer m.Close()

	return a.Run(ctx, m)
}

// Run measures img, which is left untouched.
func (a *Analyzer) Run(ctx context.Context, img *safe.Mat) (*Result, error) {
	if err := safe.ValidateMatForOperation(img, "analysis"); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	start := time.Now()
	a.logger.Debug(component, "analysis started", map[string]interface{}{
		"width":    img.Cols(),
		"height":   img.Rows(),
		"channels": img.Channels(),
		"steps":    a.chain.GetStepNames(),
	})

	gray, err := filters.ToGray(img)
	if err != nil {
		return nil, fmt.Errorf("grayscale conversion failed: %w", err)
	}

	// The chain starts from the gray image; Gray stays owned by the result.
	mask, err := a.chain.Execute(ctx, gray, a.params)
	if err != nil {
		gray.Close()
		a.logger.Error(component, err, nil)
		return nil, fmt.Errorf("mask extraction failed: %w", err)
	}

	result := &Result{Gray: gray, Mask: mask}
	if err := a.measure(ctx, result); err != nil {
		result.Close()
		a.logger.Error(component, err, nil)
		return nil, err
	}

	result.Report.Elapsed = time.Since(start)
	fields := map[string]interface{}{
		"contours": result.Report.ContourCount,
		"off_body": len(result.Report.OffBody),
		"duration": result.Report.Elapsed,
	}
	if body := result.Report.MainBody; body != nil {
		fields["area"] = body.Area
		fields["shape_factor"] = body.ShapeFactor
		fields["centroid"] = fmt.Sprintf("%d,%d", body.Centroid.X, body.Centroid.Y)
	}
	a.logger.Info(component, "analysis completed", fields)

	return result, nil
}

func (a *Analyzer) measure(ctx context.Context, result *Result) error {
	cs, err := contours.Find(result.Mask)
	if err != nil {
		return fmt.Errorf("contour extraction failed: %w", err)
	}
	result.contours = cs

	report := &Report{
		Width:        result.Gray.Cols(),
		Height:       result.Gray.Rows(),
		ContourCount: len(cs),
	}
	result.Report = report

	mainIdx, ok := contours.LargestBelow(cs, a.cfg.Contours.MaxArea)
	if !ok {
		a.logger.Warning(component, "no main body found", map[string]interface{}{
			"contours": len(cs),
			"max_area": a.cfg.Contours.MaxArea,
		})
		return nil
	}

	body := a.measureBody(mainIdx, cs[mainIdx])
	report.MainBody = body

	for _, idx := range contours.NonMainbody(cs, mainIdx) {
		if err := ctx.Err(); err != nil {
			return err
		}
		centroid := geometry.Centroid(cs[idx])
		report.OffBody = append(report.OffBody, OffBody{
			Index:    idx,
			Area:     geometry.Area(cs[idx]),
			Centroid: pointFrom(centroid),
			Distance: geometry.Distance(body.Centroid.Image(), centroid),
		})
	}

	if rc := a.cfg.Rings; rc.Enabled() {
		rings, err := geometry.SampleRings(result.Gray, body.Centroid.Image(), rc.Start, rc.Stop, rc.Step)
		if err != nil {
			return fmt.Errorf("ring sampling failed: %w", err)
		}
		report.Rings = rings
	}
	return nil
}

func (a *Analyzer) measureBody(idx int, c geometry.Contour) *Body {
	body := &Body{
		Index:     idx,
		Area:      geometry.Area(c),
		Perimeter: geometry.Perimeter(c),
		Centroid:  pointFrom(geometry.Centroid(c)),
	}

	if sf, err := geometry.ShapeFactor(c); err != nil {
		a.logger.Warning(component, "shape factor unavailable", map[string]interface{}{
			"index": idx,
			"error": err.Error(),
		})
	} else {
		body.ShapeFactor = sf
	}

	if box, err := geometry.BoxAroundCentroid(c); err != nil {
		a.logger.Warning(component, "crop box unavailable", map[string]interface{}{
			"index": idx,
			"error": err.Error(),
		})
	} else {
		b := boxFrom(box)
		body.Box = &b
	}
	return body
}
