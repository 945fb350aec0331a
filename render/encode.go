package render

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

type Format int

const (
	FormatPPM       Format = iota // P3, plain text
	FormatPPMBinary               // P6
	FormatRaw                     // packed RGB, no header
	FormatPNG
	FormatJPEG
)

var formatNames = map[Format]string{
	FormatPPM:       "ppm",
	FormatPPMBinary: "p6",
	FormatRaw:       "raw",
	FormatPNG:       "png",
	FormatJPEG:      "jpeg",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ContentType is the MIME type of encoded output.
func (f Format) ContentType() string {
	switch f {
	case FormatPPM, FormatPPMBinary:
		return "image/x-portable-pixmap"
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	}
	return "application/octet-stream"
}

// ParseFormat accepts the names printed by String plus a few aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm", "p3":
		return FormatPPM, nil
	case "p6", "ppm-binary":
		return FormatPPMBinary, nil
	case "raw", "rgb":
		return FormatRaw, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

func Encode(w io.Writer, f *Frame, format Format) error {
	switch format {
	case FormatPPM:
		return writePPM(w, f)
	case FormatPPMBinary:
		return writePPMBinary(w, f)
	case FormatRaw:
		_, err := w.Write(f.Pix)
		return err
	case FormatPNG:
		return imaging.Encode(w, f.Image(), imaging.PNG)
	case FormatJPEG:
		return imaging.Encode(w, f.Image(), imaging.JPEG, imaging.JPEGQuality(95))
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

func writePPM(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height)
	for i := 0; i < len(f.Pix); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", f.Pix[i], f.Pix[i+1], f.Pix[i+2])
	}
	return bw.Flush()
}

func writePPMBinary(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.Width, f.Height)
	bw.Write(f.Pix)
	return bw.Flush()
}
