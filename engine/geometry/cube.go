package geometry

// Cube builds an axis-aligned box centered on the origin with one segment per axis.
func Cube(width, height, depth float32) Mesh {
	return CubeSegments(width, height, depth, 1, 1, 1)
}

// CubeSegments builds a box whose faces are tessellated into ws x hs x ds
// quads. Segment counts below 1 are raised to 1.
func CubeSegments(width, height, depth float32, ws, hs, ds int) Mesh {
	ws, hs, ds = max(ws, 1), max(hs, 1), max(ds, 1)

	b := &boxBuilder{}
	b.face(2, 1, 0, -1, -1, depth, height, width, ds, hs)  // px
	b.face(2, 1, 0, 1, -1, depth, height, -width, ds, hs)  // nx
	b.face(0, 2, 1, 1, 1, width, depth, height, ws, ds)    // py
	b.face(0, 2, 1, 1, -1, width, depth, -height, ws, ds)  // ny
	b.face(0, 1, 2, 1, -1, width, height, depth, ws, hs)   // pz
	b.face(0, 1, 2, -1, -1, width, height, -depth, ws, hs) // nz

	return Mesh{Vertices: b.vertices, Normals: b.normals, Indices: b.indices}
}

type boxBuilder struct {
	vertices []float32
	normals  []float32
	indices  []uint16
	offset   int // vertices emitted by earlier faces
}

// face appends one side of the box. u, v and w select which of x/y/z the
// face's columns, rows and normal run along; the sign of depth picks the
// side of the box the face sits on.
func (b *boxBuilder) face(u, v, w int, udir, vdir float32, width, height, depth float32, gridX, gridY int) {
	segW := width / float32(gridX)
	segH := height / float32(gridY)
	halfW, halfH, halfD := width/2, height/2, depth/2
	gridX1, gridY1 := gridX+1, gridY+1

	normal := float32(1)
	if depth < 0 {
		normal = -1
	}

	var vec [3]float32
	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - halfW

			vec[u], vec[v], vec[w] = x*udir, y*vdir, halfD
			b.vertices = append(b.vertices, vec[0], vec[1], vec[2])

			vec[u], vec[v], vec[w] = 0, 0, normal
			b.normals = append(b.normals, vec[0], vec[1], vec[2])
		}
	}

	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := b.offset + ix + gridX1*iy
			bb := b.offset + ix + gridX1*(iy+1)
			c := b.offset + (ix + 1) + gridX1*(iy+1)
			d := b.offset + (ix + 1) + gridX1*iy
			b.indices = append(b.indices,
				uint16(a), uint16(bb), uint16(d),
				uint16(bb), uint16(c), uint16(d),
			)
		}
	}

	b.offset += gridX1 * gridY1
}
