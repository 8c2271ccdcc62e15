package render

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pageview/viewport"
)

type shapePage struct {
	viewport.Fixed
	shapes []Shape
}

func (p *shapePage) Content() []Shape {
	return p.shapes
}

func square(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x1, Y: y2}).
		Close()
}
