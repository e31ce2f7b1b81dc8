// Package renderer draws the input viewer scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/internal/engine/shader"
	"github.com/Faultbox/midgard-engine/internal/logger"
	"github.com/Faultbox/midgard-engine/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool
}

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;
uniform vec4 uTint;

out vec4 vertexColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vertexColor = vec4(aColor, 1.0) * uTint;
}
`

const fragmentShaderSource = `
#version 410 core

in vec4 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vertexColor;
}
`

// Marker is a triangle placed in the world.
type Marker struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    float32
	Tint     math.Vec4
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	triangleVAO uint32
	triangleVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.Compile(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.createTriangle()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.triangleVAO != 0 {
		gl.DeleteVertexArrays(1, &r.triangleVAO)
	}
	if r.triangleVBO != 0 {
		gl.DeleteBuffers(1, &r.triangleVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current width over height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.triangleVAO)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// DrawMarkers draws every marker with the given view-projection.
func (r *Renderer) DrawMarkers(viewProj math.Mat4, markers []Marker) {
	for _, m := range markers {
		r.draw(viewProj.Mul(MarkerModel(m)), m.Tint)
	}
}

// DrawCursor draws a small triangle at window pixel coordinates.
func (r *Renderer) DrawCursor(x, y int, size float32, tint math.Vec4) {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)
	r.draw(CursorMatrix(r.config.Width, r.config.Height, x, y, size), tint)
}

func (r *Renderer) draw(mvp math.Mat4, tint math.Vec4) {
	r.program.SetMat4("uMVP", mvp)
	r.program.SetVec4("uTint", tint)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// MarkerModel returns the model matrix placing a marker in the world.
func MarkerModel(m Marker) math.Mat4 {
	s := m.Scale
	if s == 0 {
		s = 1
	}
	return math.Translate(m.Position.X, m.Position.Y, m.Position.Z).
		Mul(m.Rotation.ToMat4()).
		Mul(math.Scale(s, s, s))
}

// CursorMatrix maps the unit triangle onto pixel (x, y) of a width x height
// window with y pointing down.
func CursorMatrix(width, height, x, y int, size float32) math.Mat4 {
	proj := math.Ortho(0, float32(width), float32(height), 0, -1, 1)
	return proj.Mul(math.Translate(float32(x), float32(y), 0)).Mul(math.Scale(size, -size, 1))
}

// createTriangle uploads the unit triangle shared by markers and the cursor.
func (r *Renderer) createTriangle() {
	// position (x, y, z) + color (r, g, b)
	vertices := []float32{
		0.0, 0.5, 0.0, 1.0, 0.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
	}

	gl.GenVertexArrays(1, &r.triangleVAO)
	gl.BindVertexArray(r.triangleVAO)

	gl.GenBuffers(1, &r.triangleVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.triangleVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("triangle created",
		zap.Uint32("vao", r.triangleVAO),
		zap.Uint32("vbo", r.triangleVBO),
	)
}
