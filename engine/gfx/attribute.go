package gfx

// Dimension is the size of one vector or matrix axis.
type Dimension int

const (
	D2 Dimension = 2
	D3 Dimension = 3
	D4 Dimension = 4
)

type shapeKind uint8

const (
	scalarShape shapeKind = iota
	vectorShape
	matrixShape
)

// Shape is the per-vertex arity of an attribute.
type Shape struct {
	kind       shapeKind
	rows, cols Dimension
}

func Scalar() Shape                     { return Shape{kind: scalarShape} }
func Vector(n Dimension) Shape          { return Shape{kind: vectorShape, rows: n} }
func Matrix(rows, cols Dimension) Shape { return Shape{kind: matrixShape, rows: rows, cols: cols} }

// Components is the number of floats one vertex consumes.
func (s Shape) Components() int {
	switch s.kind {
	case vectorShape:
		return int(s.rows)
	case matrixShape:
		return int(s.rows) * int(s.cols)
	}
	return 1
}

// Columns is the number of consecutive attribute locations the shape takes.
// Matrices are bound one column per location.
func (s Shape) Columns() int {
	if s.kind == matrixShape {
		return int(s.cols)
	}
	return 1
}

// Rows is the number of floats bound at each location.
func (s Shape) Rows() int {
	if s.kind == scalarShape {
		return 1
	}
	return int(s.rows)
}

// Attribute is a named per-vertex input and its raw values.
// len(Values) must be a multiple of Shape.Components().
type Attribute struct {
	Name   string
	Shape  Shape
	Values []float32
}

// Count reports how many vertices the values describe.
func (a Attribute) Count() int { return len(a.Values) / a.Shape.Components() }

// boundAttribute is an uploaded attribute; the values are not retained.
type boundAttribute struct {
	name     string
	location int32
	shape    Shape
	buffer   Buffer
}

func (a boundAttribute) bind(ctx Context) {
	if a.location < 0 {
		return
	}
	ctx.BindBuffer(ArrayBuffer, a.buffer)

	stride := int32(0)
	if a.shape.Columns() > 1 {
		stride = int32(a.shape.Components() * 4)
	}
	for col := 0; col < a.shape.Columns(); col++ {
		loc := uint32(a.location) + uint32(col)
		ctx.VertexAttribPointer(loc, int32(a.shape.Rows()), stride, col*a.shape.Rows()*4)
		ctx.EnableVertexAttribArray(loc)
	}
}
