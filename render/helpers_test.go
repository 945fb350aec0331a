package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"testing"
)

// readPPM parses a plain (P3) pixmap with maxval 255.
func readPPM(r io.Reader) (*Frame, error) {
	br := bufio.NewReader(r)
	var magic string
	var width, height, maxval int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxval); err != nil {
		return nil, err
	}
	if magic != "P3" || maxval != 255 {
		return nil, fmt.Errorf("unsupported pixmap %s maxval %d", magic, maxval)
	}
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	for i := range f.Pix {
		var v int
		if _, err := fmt.Fscan(br, &v); err != nil {
			return nil, fmt.Errorf("pixel value %d: %w", i, err)
		}
		f.Pix[i] = uint8(v)
	}
	return f, nil
}

func loadGolden(t *testing.T, path string) *Frame {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open golden image: %v", err)
	}
	defer file.Close()
	f, err := readPPM(file)
	if err != nil {
		t.Fatalf("parse golden image: %v", err)
	}
	return f
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
