package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"raytracing/render"
)

type flags struct {
	out      string
	format   render.Format
	width    int
	height   int
	scale    int
	workers  int
	windowed bool
	upload   string
	timeout  time.Duration
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("raytrace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func NewFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	out := fs.String("out", "", "Output image path. The extension selects the format (.ppm, .p6, .rgb, .png, .jpg). If empty, a P3 pixmap is written to stdout")
	format := fs.String("format", "", "Output format override: ppm, p6, raw, png or jpeg")
	width := fs.Int("width", 100, "Render width in pixels (default 100)")
	ar := fs.String("ar", "2:1", "Render aspect ratio in width:height format (default \"2:1\")")
	scale := fs.Int("scale", 1, "Integer upscale factor applied after rendering (default 1)")
	workers := fs.Int("workers", 0, "Number of rows rendered concurrently, 0 means one per CPU")
	windowed := fs.Bool("windowed", false, "If provided, the render is displayed in a window until it is closed")
	upload := fs.String("upload", "", "If provided, the encoded image is uploaded to the configured S3 bucket under this key")
	timeout := fs.Duration("timeout", 30*time.Second, "Maximum render time")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *width <= 0 {
		return nil, fmt.Errorf("error: Render width must be greater than 0")
	}

	parsedAspectRatio, err := parseAspectRatio(*ar)
	if err != nil {
		return nil, fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%s", err.Error())
	}
	height := int(1. / parsedAspectRatio * float64(*width))
	if height <= 0 {
		return nil, fmt.Errorf("error: Aspect ratio %s leaves no rows at width %d", *ar, *width)
	}

	if *scale < 1 {
		return nil, fmt.Errorf("error: Scale must be at least 1")
	}

	if *workers < 0 {
		return nil, fmt.Errorf("error: Workers cannot be negative")
	}

	if *timeout <= 0 {
		return nil, fmt.Errorf("error: Timeout must be positive")
	}

	if *out != "" {
		if dirExists, err := exists(filepath.Dir(*out)); !dirExists {
			return nil, fmt.Errorf("error: Output directory not found:\n\t%s", err.Error())
		}
	}

	parsedFormat, err := resolveFormat(*format, *out)
	if err != nil {
		return nil, fmt.Errorf("error: %s", err.Error())
	}

	return &flags{
		out:      *out,
		format:   parsedFormat,
		width:    *width,
		height:   height,
		scale:    *scale,
		workers:  *workers,
		windowed: *windowed,
		upload:   *upload,
		timeout:  *timeout,
	}, nil
}

func resolveFormat(format, out string) (render.Format, error) {
	switch {
	case format != "":
		return render.ParseFormat(format)
	case out != "":
		return render.FormatFromPath(out)
	}
	return render.FormatPPM, nil
}

func parseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if height == 0 {
		return 0, fmt.Errorf("error: Height cannot be zero")
	}

	if width <= 0 || height < 0 {
		return 0, fmt.Errorf("error: Aspect ratio must be positive")
	}

	return width / height, nil
}

func (f flags) Out() string { return f.out }
func (f flags) Format() render.Format { return f.format }
func (f flags) Width() int { return f.width }
func (f flags) Height() int { return f.height }
func (f flags) Scale() int { return f.scale }
func (f flags) Workers() int { return f.workers }
func (f flags) Windowed() bool { return f.windowed }
func (f flags) Upload() string { return f.upload }
func (f flags) Timeout() time.Duration { return f.timeout }
