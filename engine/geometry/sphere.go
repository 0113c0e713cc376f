package geometry

import "github.com/chewxy/math32"

// DefaultSphere is a UV sphere with 8 x 6 segments covering the whole surface.
func DefaultSphere(radius float32) Mesh {
	return UVSphere(radius, 8, 6, 0, 2*math32.Pi, 0, math32.Pi)
}

// UVSphere builds a latitude/longitude sphere. phi sweeps around the Y axis,
// theta from the +Y pole downwards. widthSegments is raised to at least 3 and
// heightSegments to at least 2.
//
// Triangles that would collapse onto a pole are left out, so a full sphere
// has 6*w*h - 6*w indices.
func UVSphere(radius float32, widthSegments, heightSegments int, phiStart, phiLength, thetaStart, thetaLength float32) Mesh {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)
	thetaEnd := math32.Min(math32.Pi, thetaStart+thetaLength)

	n := (widthSegments + 1) * (heightSegments + 1)
	m := Mesh{
		Vertices: make([]float32, 0, n*3),
		Normals:  make([]float32, 0, n*3),
		Indices:  make([]uint16, 0, widthSegments*heightSegments*6),
	}

	row := widthSegments + 1
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		theta := thetaStart + v*thetaLength
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := phiStart + u*phiLength
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)

			x := -radius * cosP * sinT
			y := radius * cosT
			z := radius * sinP * sinT
			m.Vertices = append(m.Vertices, x, y, z)

			nx, ny, nz := normalize(x, y, z)
			m.Normals = append(m.Normals, nx, ny, nz)
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint16(iy*row + ix + 1)
			b := uint16(iy*row + ix)
			c := uint16((iy+1)*row + ix)
			d := uint16((iy+1)*row + ix + 1)

			if iy != 0 || thetaStart > 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 || thetaEnd < math32.Pi {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}

func normalize(x, y, z float32) (float32, float32, float32) {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}
