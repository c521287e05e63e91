package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"cellscope/internal/logger"
	"cellscope/internal/processing/histogram"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for the cell pipeline. Zero values are not meaningful;
// start from Default and override.
type Config struct {
	Filters  FilterConfig  `yaml:"filters"`
	Contours ContourConfig `yaml:"contours"`
	Rings    RingConfig    `yaml:"rings"`
	Drawing  DrawConfig    `yaml:"drawing"`
	LogLevel string        `yaml:"log_level"`
}

type FilterConfig struct {
	// BlurKernel is the Gaussian kernel used for background subtraction.
	BlurKernel int `yaml:"blur_kernel"`
	// CloseKernel is the rectangular structuring element used for closing.
	CloseKernel int `yaml:"close_kernel"`
	// Threshold is the global binary threshold (0-255).
	Threshold float32 `yaml:"threshold"`
	// ThresholdMethod derives the global threshold from the image histogram
	// (otsu, mean, median, triangle). "fixed" uses Threshold as is.
	ThresholdMethod string `yaml:"threshold_method"`
	// AdaptiveBlock and AdaptiveC feed the Gaussian adaptive threshold.
	AdaptiveBlock int     `yaml:"adaptive_block"`
	AdaptiveC     float32 `yaml:"adaptive_c"`
	// UseAdaptive selects the adaptive threshold instead of the global one.
	UseAdaptive bool `yaml:"use_adaptive"`
	// FillHoles closes interior holes after thresholding.
	FillHoles bool `yaml:"fill_holes"`
}

type ContourConfig struct {
	// MaxArea excludes full-frame artifacts from main body selection.
	MaxArea float64 `yaml:"max_area"`
}

type RingConfig struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
	Step  int `yaml:"step"`
}

// Enabled reports whether ring sampling should run.
func (r RingConfig) Enabled() bool {
	return r.Step > 0 && r.Stop > r.Start
}

type DrawConfig struct {
	ContourColor     RGB `yaml:"contour_color"`
	ContourThickness int `yaml:"contour_thickness"`
	CentroidColor    RGB `yaml:"centroid_color"`
	CentroidRadius   int `yaml:"centroid_radius"`
	LineColor        RGB `yaml:"line_color"`
	LineThickness    int `yaml:"line_thickness"`
}

// RGB is a YAML-friendly color triple.
type RGB [3]uint8

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

func Default() *Config {
	return &Config{
		Filters: FilterConfig{
			BlurKernel:      51,
			CloseKernel:     5,
			Threshold:       10,
			ThresholdMethod: "fixed",
			AdaptiveBlock:   11,
			AdaptiveC:       2,
			UseAdaptive:     false,
			FillHoles:       true,
		},
		Contours: ContourConfig{
			MaxArea: 4000000,
		},
		Rings: RingConfig{
			Start: 0,
			Stop:  0,
			Step:  0,
		},
		Drawing: DrawConfig{
			ContourColor:     RGB{128, 255, 0},
			ContourThickness: 5,
			CentroidColor:    RGB{255, 255, 255},
			CentroidRadius:   10,
			LineColor:        RGB{255, 255, 255},
			LineThickness:    2,
		},
		LogLevel: "info",
	}
}

// Load decodes YAML over the defaults. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// NewLogger builds a console logger on w at the configured log level.
func (c *Config) NewLogger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return logger.NewConsoleLoggerTo(w, level), nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Filters.BlurKernel <= 0 || c.Filters.BlurKernel%2 == 0 {
		errs = append(errs, fmt.Errorf("filters.blur_kernel must be positive and odd, got %d", c.Filters.BlurKernel))
	}
	if c.Filters.CloseKernel <= 0 {
		errs = append(errs, fmt.Errorf("filters.close_kernel must be positive, got %d", c.Filters.CloseKernel))
	}
	if c.Filters.Threshold < 0 || c.Filters.Threshold > 255 {
		errs = append(errs, fmt.Errorf("filters.threshold must be in [0, 255], got %v", c.Filters.Threshold))
	}
	if _, err := histogram.ParseMethod(c.Filters.ThresholdMethod); err != nil {
		errs = append(errs, fmt.Errorf("filters.threshold_method: %w", err))
	}
	if c.Filters.AdaptiveBlock < 3 || c.Filters.AdaptiveBlock%2 == 0 {
		errs = append(errs, fmt.Errorf("filters.adaptive_block must be odd and >= 3, got %d", c.Filters.AdaptiveBlock))
	}
	if c.Contours.MaxArea <= 0 {
		errs = append(errs, fmt.Errorf("contours.max_area must be positive, got %v", c.Contours.MaxArea))
	}
	if c.Rings.Start < 0 || c.Rings.Step < 0 {
		errs = append(errs, fmt.Errorf("rings.start and rings.step must not be negative"))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	return errors.Join(errs...)
}
