package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"raytracing/render"
)

// GLFW calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func run(ctx context.Context, flags *flags, cfg *Config) error {
	renderer := render.NewRenderer()
	renderer.Workers = flags.Workers()
	renderer.Progress = func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rScanlines remaining: %d ", total-done)
	}

	renderCtx, cancel := context.WithTimeout(ctx, flags.Timeout())
	defer cancel()

	start := time.Now()
	frame, err := renderer.Render(renderCtx, flags.Width(), flags.Height())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "\nDone.\n")
	log.Printf("Rendered %dx%d in %v", frame.Width, frame.Height, time.Since(start))

	frame, err = render.Upscale(frame, flags.Scale())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, frame, flags.Format()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", flags.Format(), err)
	}

	switch {
	case flags.Out() != "":
		if err := writeImageFile(flags.Out(), buf.Bytes()); err != nil {
			return err
		}
		log.Printf("Wrote %s (%d bytes)", flags.Out(), buf.Len())
	case !flags.Windowed() && flags.Upload() == "":
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write image to stdout: %w", err)
		}
	}

	if flags.Upload() != "" {
		uploader, err := NewUploader(cfg)
		if err != nil {
			return err
		}
		if err := uploader.Upload(ctx, buf.Bytes(), flags.Upload(), flags.Format().ContentType()); err != nil {
			return err
		}
	}

	if flags.Windowed() {
		return showFrame(frame, "raytrace")
	}
	return nil
}

func main() {
	fs := newFlagSet()
	flags, err := NewFlags(fs, os.Args[1:])
	if err != nil {
		fs.SetOutput(os.Stderr)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return
		}
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		fs.Usage()
		os.Exit(2)
	}

	if flags.Windowed() && !displayAvailable {
		log.Fatalf("error: -windowed requires a build with window support")
	}

	if err := run(context.Background(), flags, LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}
}
