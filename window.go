//go:build !nogl

package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raytracing/render"
)

const displayAvailable = true

func buildShader(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertex := gl.CreateShader(gl.VERTEX_SHADER)
	cvs, freeVertex := gl.Strs(vertexShaderSource)
	gl.ShaderSource(vertex, 1, cvs, nil)
	freeVertex()
	gl.CompileShader(vertex)
	if err := checkShaderCompileErrors(vertex, "VERTEX"); err != nil {
		return 0, err
	}

	fragment := gl.CreateShader(gl.FRAGMENT_SHADER)
	cfs, freeFragment := gl.Strs(fragmentShaderSource)
	gl.ShaderSource(fragment, 1, cfs, nil)
	freeFragment()
	gl.CompileShader(fragment)
	if err := checkShaderCompileErrors(fragment, "FRAGMENT"); err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	if err := checkProgramLinkErrors(program); err != nil {
		return 0, err
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return program, nil
}

func checkShaderCompileErrors(shader uint32, shaderType string) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		return fmt.Errorf("[%s SHADER COMPILE ERROR]:\n%s", shaderType, strings.TrimSpace(logMsg))
	}
	return nil
}

func checkProgramLinkErrors(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		return fmt.Errorf("[PROGRAM LINK ERROR]:\n%s", strings.TrimSpace(logMsg))
	}
	return nil
}

// showFrame opens a window sized to the frame and blits it until the window
// is closed or Escape is pressed. Must be called from the main thread.
func showFrame(frame *render.Frame, title string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(frame.Width, frame.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	blitProgram, err := buildShader(`
	#version 460 core
	layout(location = 0) in vec2 position;
	layout(location = 1) in vec2 texCoord;
	out vec2 uv;
	void main() {
		uv = texCoord;
		gl_Position = vec4(position, 0.0, 1.0);
	}`+"\x00", `
	#version 460 core
	in vec2 uv;
	out vec4 fragColor;
	uniform sampler2D tex;
	void main() {
		fragColor = texture(tex, uv);
	}`+"\x00")
	if err != nil {
		return err
	}

	quadVertices := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	// frame row 0 is the top of the image, GL textures start at the bottom
	texCoords := []float32{0, 1, 1, 1, 0, 0, 1, 0}

	var blitVAO, blitVBO, blitTBO uint32
	gl.GenVertexArrays(1, &blitVAO)
	gl.BindVertexArray(blitVAO)

	gl.GenBuffers(1, &blitVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &blitTBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitTBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(texCoords)*4, gl.Ptr(texCoords), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(1)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(frame.Width), int32(frame.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(blitProgram)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BindVertexArray(blitVAO)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		window.SwapBuffers()
		glfw.WaitEvents()
	}
	return nil
}
