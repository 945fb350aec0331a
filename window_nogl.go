//go:build nogl

package main

import (
	"errors"

	"raytracing/render"
)

const displayAvailable = false

func showFrame(frame *render.Frame, title string) error {
	return errors.New("built without window support (nogl)")
}
