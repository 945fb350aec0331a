package render

import (
	"github.com/nfnt/resize"
)

// Upscale enlarges f by an integer factor with nearest neighbour sampling,
// so each pixel becomes a factor x factor block.
func Upscale(f *Frame, factor int) (*Frame, error) {
	if factor < 1 {
		return nil, ErrInvalidScale
	}
	if factor == 1 {
		return f, nil
	}
	img := resize.Resize(uint(f.Width*factor), uint(f.Height*factor), f.Image(), resize.NearestNeighbor)
	return FrameFromImage(img), nil
}
