package render

import (
	"errors"
	"testing"
)

func TestUpscale(t *testing.T) {
	f := testFrame()
	big, err := Upscale(f, 4)
	if err != nil {
		t.Fatal(err)
	}
	if big.Width != 8 || big.Height != 4 {
		t.Fatalf("expected 8x4, got %dx%d", big.Width, big.Height)
	}
	for _, tt := range []struct{ x, y, src int }{{1, 1, 0}, {2, 2, 0}, {5, 1, 1}, {6, 2, 1}} {
		wr, wg, wb := f.At(tt.src, 0)
		if r, g, b := big.At(tt.x, tt.y); r != wr || g != wg || b != wb {
			t.Errorf("pixel (%d, %d): expected %d %d %d, got %d %d %d", tt.x, tt.y, wr, wg, wb, r, g, b)
		}
	}
}

func TestUpscaleIdentity(t *testing.T) {
	f := testFrame()
	same, err := Upscale(f, 1)
	if err != nil || same != f {
		t.Errorf("factor 1 should return the same frame, got %v (%v)", same, err)
	}
}

func TestUpscaleInvalid(t *testing.T) {
	if _, err := Upscale(testFrame(), 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
}
