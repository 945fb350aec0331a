package main

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"raytracing/render"
)

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2:1", 2, false},
		{"16:9", 16.0 / 9.0, false},
		{"1.5:1", 1.5, false},
		{"2", 0, true},
		{"2:1:1", 0, true},
		{"a:1", 0, true},
		{"2:b", 0, true},
		{"2:0", 0, true},
		{"-2:1", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAspectRatio(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAspectRatio(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAspectRatio(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNewFlagsDefaults(t *testing.T) {
	f, err := NewFlags(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("NewFlags failed: %v", err)
	}
	if f.Width() != 100 || f.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", f.Width(), f.Height())
	}
	if f.Out() != "" || f.Format() != render.FormatPPM {
		t.Errorf("expected P3 on stdout, got %q %v", f.Out(), f.Format())
	}
	if f.Scale() != 1 || f.Workers() != 0 || f.Windowed() || f.Upload() != "" {
		t.Errorf("unexpected defaults: %+v", *f)
	}
	if f.Timeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", f.Timeout())
	}
}

func TestNewFlagsFormatFromOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "render.png")
	f, err := NewFlags(newFlagSet(), []string{"-out", out, "-width", "320", "-ar", "16:9", "-scale", "2"})
	if err != nil {
		t.Fatalf("NewFlags failed: %v", err)
	}
	if f.Format() != render.FormatPNG {
		t.Errorf("expected png, got %v", f.Format())
	}
	if f.Height() != 180 {
		t.Errorf("expected height 180, got %d", f.Height())
	}

	f, err = NewFlags(newFlagSet(), []string{"-out", out, "-format", "p6"})
	if err != nil {
		t.Fatalf("NewFlags failed: %v", err)
	}
	if f.Format() != render.FormatPPMBinary {
		t.Errorf("-format should override the extension, got %v", f.Format())
	}
}

func TestNewFlagsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero width", []string{"-width", "0"}, "width"},
		{"bad ratio", []string{"-ar", "wide"}, "Aspect Ratio"},
		{"no rows", []string{"-width", "1", "-ar", "4:1"}, "no rows"},
		{"bad scale", []string{"-scale", "0"}, "Scale"},
		{"negative workers", []string{"-workers", "-1"}, "Workers"},
		{"bad timeout", []string{"-timeout", "0s"}, "Timeout"},
		{"missing dir", []string{"-out", filepath.Join(dir, "nope", "x.ppm")}, "directory"},
		{"unknown extension", []string{"-out", filepath.Join(dir, "x.gif")}, "unknown image format"},
		{"unknown format", []string{"-format", "bmp"}, "unknown image format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFlags(newFlagSet(), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNewFlagsHelp(t *testing.T) {
	if _, err := NewFlags(newFlagSet(), []string{"-help"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}
