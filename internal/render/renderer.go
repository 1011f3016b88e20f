//go:build ebiten

package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ungerik/go3d/float64/vec2"

	"spikeball/internal/core"
	"spikeball/internal/mesh"
)

// Renderer draws a mesh instance with ebiten. Per frame every vertex is
// displaced, shaded, rotated by the scene pose and projected; triangles are
// then painter-sorted far to near and emitted in one DrawTriangles call over
// a 1x1 white source image.
type Renderer struct {
	white *ebiten.Image

	verts  []ebiten.Vertex
	depths []float64
	tris   []triangle
	idxBuf []uint16
}

type triangle struct {
	i0, i1, i2 uint16
	depth      float64
}

// NewRenderer allocates the renderer and its white source pixel.
func NewRenderer() *Renderer {
	r := &Renderer{white: ebiten.NewImage(1, 1)}
	r.white.Fill(color.White)
	return r
}

// Draw renders one frame of the instance. The camera looks down -Z; larger
// world z is nearer.
func (r *Renderer) Draw(dst *ebiten.Image, inst *mesh.Instance, shader *Shader, pose core.Pose, impulse vec2.T, t float64, cam *Camera) {
	geom := inst.Geometry()
	d := inst.Displacer()

	if cap(r.verts) < len(geom.Vertices) {
		r.verts = make([]ebiten.Vertex, len(geom.Vertices))
		r.depths = make([]float64, len(geom.Vertices))
	}
	r.verts = r.verts[:len(geom.Vertices)]
	r.depths = r.depths[:len(geom.Vertices)]

	for i, v := range geom.Vertices {
		pos, uvNoise := d.Displace(v, impulse, pose.RotY)
		world := pose.Apply(pos)
		sx, sy := cam.Project(world[0], world[1])
		cr, cg, cb := shader.VertexColor(v.UV, uvNoise, t)

		r.verts[i] = ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(cr), ColorG: float32(cg), ColorB: float32(cb), ColorA: 1,
		}
		r.depths[i] = world[2]
	}

	triCount := len(geom.Indices) / 3
	if cap(r.tris) < triCount {
		r.tris = make([]triangle, triCount)
		r.idxBuf = make([]uint16, triCount*3)
	}
	r.tris = r.tris[:triCount]
	r.idxBuf = r.idxBuf[:triCount*3]

	for ti := 0; ti < triCount; ti++ {
		i0 := geom.Indices[ti*3]
		i1 := geom.Indices[ti*3+1]
		i2 := geom.Indices[ti*3+2]
		r.tris[ti] = triangle{
			i0: i0, i1: i1, i2: i2,
			depth: (r.depths[i0] + r.depths[i1] + r.depths[i2]) / 3,
		}
	}
	sort.Slice(r.tris, func(a, b int) bool { return r.tris[a].depth < r.tris[b].depth })

	for ti, tr := range r.tris {
		r.idxBuf[ti*3] = tr.i0
		r.idxBuf[ti*3+1] = tr.i1
		r.idxBuf[ti*3+2] = tr.i2
	}

	dst.DrawTriangles(r.verts, r.idxBuf, r.white, &ebiten.DrawTrianglesOptions{})
}

// Dispose releases GPU resources. The renderer must not be used afterwards.
func (r *Renderer) Dispose() {
	if r.white != nil {
		r.white.Dispose()
		r.white = nil
	}
}
