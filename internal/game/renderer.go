package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Vertex layout: x, z, r, g, b.
const vertexFloats = 5

// maxDynamicVerts bounds the streaming buffer: vehicles plus HUD are a few
// hundred triangles at most.
const maxDynamicVerts = 1 << 14

// Renderer draws the world top-down as colored triangles: one static mesh
// built once from the generated city, one streaming mesh for vehicles + HUD.
type Renderer struct {
	prog uint32

	staticVAO   uint32
	staticVBO   uint32
	staticCount int32

	dynVAO uint32
	dynVBO uint32

	uCamera     int32
	uZoom       int32
	uResolution int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}

	r := &Renderer{prog: prog}
	gl.UseProgram(prog)
	r.uCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.GenVertexArrays(1, &r.staticVAO)
	gl.GenBuffers(1, &r.staticVBO)
	gl.GenVertexArrays(1, &r.dynVAO)
	gl.GenBuffers(1, &r.dynVBO)

	bindLayout := func(vao, vbo uint32) {
		gl.BindVertexArray(vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		stride := int32(vertexFloats * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(2*4))
	}
	bindLayout(r.staticVAO, r.staticVBO)
	bindLayout(r.dynVAO, r.dynVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dynVBO)
	gl.BufferData(gl.ARRAY_BUFFER, maxDynamicVerts*vertexFloats*4, nil, gl.STREAM_DRAW)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.staticVBO, r.dynVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.staticVAO, r.dynVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// UploadWorldMesh builds and uploads the static city mesh once.
func (r *Renderer) UploadWorldMesh(w *World) {
	mesh := BuildWorldMesh(w, nil)
	r.staticCount = int32(len(mesh) / vertexFloats)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.staticVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(&mesh[0]), gl.STATIC_DRAW)
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Z))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
}

// DrawWorld renders the static city mesh.
func (r *Renderer) DrawWorld() {
	if r.staticCount == 0 {
		return
	}
	gl.BindVertexArray(r.staticVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.staticCount)
}

// DrawDynamic streams and renders a per-frame triangle buffer in world space.
func (r *Renderer) DrawDynamic(buf []float32) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)
	if n > maxDynamicVerts*vertexFloats {
		n = maxDynamicVerts * vertexFloats
	}
	gl.BindVertexArray(r.dynVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dynVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(&buf[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n/vertexFloats))
}

// DrawScreen renders a triangle buffer in framebuffer pixel space (HUD).
// World-space uniforms are re-set by BeginFrame on the next frame.
func (r *Renderer) DrawScreen(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.Uniform2f(r.uCamera, float32(fbW)/2, float32(fbH)/2)
	gl.Uniform1f(r.uZoom, 1.0)
	r.DrawDynamic(buf)
}

// pushQuad appends two triangles for a rectangle centred at (cx, cz),
// rotated by rot, with half extents (hw, hd).
func pushQuad(buf []float32, cx, cz, hw, hd, rot float64, cr, cg, cb float32) []float32 {
	c := math.Cos(rot)
	s := math.Sin(rot)
	px := func(lx, lz float64) (float32, float32) {
		return float32(cx + lx*c - lz*s), float32(cz + lx*s + lz*c)
	}
	x0, z0 := px(-hw, -hd)
	x1, z1 := px(hw, -hd)
	x2, z2 := px(hw, hd)
	x3, z3 := px(-hw, hd)
	return append(buf,
		x0, z0, cr, cg, cb,
		x1, z1, cr, cg, cb,
		x2, z2, cr, cg, cb,
		x0, z0, cr, cg, cb,
		x2, z2, cr, cg, cb,
		x3, z3, cr, cg, cb,
	)
}

func pushBox(buf []float32, b AABB, cr, cg, cb float32) []float32 {
	cx := (b.MinX + b.MaxX) / 2
	cz := (b.MinZ + b.MaxZ) / 2
	return pushQuad(buf, cx, cz, (b.MaxX-b.MinX)/2, (b.MaxZ-b.MinZ)/2, 0, cr, cg, cb)
}

// BuildWorldMesh produces the static triangle mesh for the whole city:
// ground, road corridors, buildings shaded by height, and trees.
func BuildWorldMesh(w *World, buf []float32) []float32 {
	buf = buf[:0]

	buf = pushBox(buf, w.Bounds, 0.32, 0.35, 0.30) // ground

	for _, rd := range w.Roads {
		buf = pushBox(buf, rd, 0.17, 0.17, 0.19)
	}

	for _, b := range w.Buildings {
		// Taller buildings read darker from above.
		shade := float32(clampF(1.0-b.Height/80.0, 0.35, 0.95))
		buf = pushBox(buf, b.Box(), 0.45*shade+0.18, 0.42*shade+0.16, 0.40*shade+0.15)
	}

	for _, t := range w.Trees {
		buf = pushQuad(buf, t.X, t.Z, t.Radius, t.Radius, math.Pi/4, 0.16, 0.42, 0.18)
		buf = pushQuad(buf, t.X, t.Z, t.Radius*0.7, t.Radius*0.7, 0, 0.20, 0.52, 0.22)
	}

	return buf
}

// BuildVehicleMesh appends rotated car quads for every published transform.
func BuildVehicleMesh(transforms []Transform, buf []float32) []float32 {
	buf = buf[:0]
	for _, t := range transforms {
		var br, bg, bb float32 = 0.75, 0.72, 0.24
		if t.Kind == KindPlayer {
			br, bg, bb = 0.88, 0.20, 0.16
		}
		buf = pushQuad(buf, t.X, t.Z, CarHalfWidth, CarHalfLength, t.Yaw, br, bg, bb)
		// Windshield stripe toward the nose (-z local).
		nx := t.X + math.Sin(t.Yaw)*CarHalfLength*0.45
		nz := t.Z - math.Cos(t.Yaw)*CarHalfLength*0.45
		buf = pushQuad(buf, nx, nz, CarHalfWidth*0.8, CarHalfLength*0.28, t.Yaw, 0.12, 0.14, 0.18)
	}
	return buf
}
