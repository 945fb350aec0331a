package render

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"raytracing/tracer"
)

// Renderer shades one ray per pixel. Rows are independent and are rendered
// concurrently by up to Workers goroutines.
type Renderer struct {
	Camera  Camera
	Shader  tracer.Shader
	Workers int

	// Progress, if set, is called after each completed row. It may be
	// called from several goroutines.
	Progress func(done, total int)
}

func NewRenderer() *Renderer {
	return &Renderer{
		Camera: DefaultCamera(),
		Shader: tracer.DefaultShader(),
	}
}

func (r *Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

func (r *Renderer) Render(ctx context.Context, width, height int) (*Frame, error) {
	frame, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.renderRow(frame, y)
			if r.Progress != nil {
				r.Progress(int(done.Add(1)), height)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may stop early without any row returning an error
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frame, nil
}

// renderRow fills image row y. The image plane's v axis points up, so the
// top row is v = (height-1)/height.
func (r *Renderer) renderRow(frame *Frame, y int) {
	v := float32(frame.Height-1-y) / float32(frame.Height)
	for x := 0; x < frame.Width; x++ {
		u := float32(x) / float32(frame.Width)
		c := r.Shader.Color(r.Camera.Ray(u, v))
		frame.Set(x, y, Quantize(c.R()), Quantize(c.G()), Quantize(c.B()))
	}
}
