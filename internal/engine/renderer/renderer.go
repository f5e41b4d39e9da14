// Package renderer draws colored line and triangle batches with OpenGL.
// World geometry is transformed by the camera; overlay geometry is given in
// window pixels and drawn on top without depth testing.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxselect/internal/engine/shader"
	"github.com/Faultbox/boxselect/internal/logger"
	"github.com/Faultbox/boxselect/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Color is an RGBA color.
type Color [4]float32

// RGB returns an opaque color.
func RGB(c [3]float32) Color {
	return Color{c[0], c[1], c[2], 1}
}

// floatsPerVertex is position (3) + color (4).
const floatsPerVertex = 7

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uMVP;

out vec4 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// batch is CPU-side vertex data for one primitive type.
type batch struct {
	mode  uint32
	verts []float32
}

func (b *batch) add(p math.Vec3, c Color) {
	b.verts = append(b.verts, p.X, p.Y, p.Z, c[0], c[1], c[2], c[3])
}

func (b *batch) count() int32 {
	return int32(len(b.verts) / floatsPerVertex)
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32
	locMVP  int32
	vao     uint32
	vbo     uint32
	vboSize int

	worldLines   batch
	overlayTris  batch
	overlayLines batch
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:       cfg,
		worldLines:   batch{mode: gl.LINES},
		overlayTris:  batch{mode: gl.TRIANGLES},
		overlayLines: batch{mode: gl.LINES},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locMVP = shader.MustUniform(r.program, "uMVP")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("line renderer created",
		zap.Uint32("program", r.program),
		zap.Uint32("vao", r.vao),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize sets the framebuffer size in pixels and the overlay coordinate space
// in window points. They differ on high-DPI displays.
func (r *Renderer) Resize(pixelWidth, pixelHeight, width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(pixelWidth), int32(pixelHeight))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("pixelWidth", pixelWidth),
		zap.Int("pixelHeight", pixelHeight),
	)
}

// Begin clears the frame and drops last frame's batches.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.worldLines.verts = r.worldLines.verts[:0]
	r.overlayTris.verts = r.overlayTris.verts[:0]
	r.overlayLines.verts = r.overlayLines.verts[:0]
}

// Lines queues world-space line-list vertices.
func (r *Renderer) Lines(verts []math.Vec3, c Color) {
	for _, v := range verts {
		r.worldLines.add(v, c)
	}
}

// OverlayLines queues line-list vertices in window coordinates.
func (r *Renderer) OverlayLines(verts []math.Vec2, c Color) {
	for _, v := range verts {
		r.overlayLines.add(r.toNDC(v), c)
	}
}

// OverlayTriangles queues triangle-list vertices in window coordinates.
func (r *Renderer) OverlayTriangles(verts []math.Vec2, c Color) {
	for _, v := range verts {
		r.overlayTris.add(r.toNDC(v), c)
	}
}

func (r *Renderer) toNDC(p math.Vec2) math.Vec3 {
	return PixelToNDC(p, float32(r.config.Width), float32(r.config.Height))
}

// PixelToNDC maps a window point (origin top-left, y down) to normalized
// device coordinates.
func PixelToNDC(p math.Vec2, width, height float32) math.Vec3 {
	if width <= 0 || height <= 0 {
		return math.Vec3{}
	}
	return math.Vec3{X: p.X/width*2 - 1, Y: 1 - p.Y/height*2}
}

// End draws the queued batches: world lines with viewProj, then the overlay.
func (r *Renderer) End(viewProj math.Mat4) {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	gl.UniformMatrix4fv(r.locMVP, 1, false, viewProj.Ptr())
	r.draw(&r.worldLines)

	identity := math.Identity()
	gl.Disable(gl.DEPTH_TEST)
	gl.UniformMatrix4fv(r.locMVP, 1, false, identity.Ptr())
	r.draw(&r.overlayTris)
	r.draw(&r.overlayLines)
	gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(0)
}

func (r *Renderer) draw(b *batch) {
	n := b.count()
	if n == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(b.verts) * 4
	if size > r.vboSize {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&b.verts[0]), gl.DYNAMIC_DRAW)
		r.vboSize = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&b.verts[0]))
	}
	gl.DrawArrays(b.mode, 0, n)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
