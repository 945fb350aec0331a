package render

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Frame is a packed 8-bit RGB pixel buffer. Row 0 is the top of the image.
type Frame struct {
	Width, Height int
	Pix           []uint8
}

func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}, nil
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

func (f *Frame) Set(x, y int, r, g, b uint8) {
	i := f.offset(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := f.offset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Image converts the frame to an opaque NRGBA image.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// FrameFromImage copies img into a new frame, dropping alpha.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := &Frame{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, bounds.Dx()*bounds.Dy()*3),
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			f.Set(x, y, c.R, c.G, c.B)
		}
	}
	return f
}

// Quantize maps a [0,1] channel to 0..255 by scaling with 255.99 and
// truncating. Out of range values saturate and NaN maps to 0.
func Quantize(c float32) uint8 {
	v := 255.99 * c
	switch {
	case math32.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
