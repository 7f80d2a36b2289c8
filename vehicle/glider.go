package vehicle

import (
	"github.com/jakecoffman/cp/v2"
)

// Glider is a vehicle backed by a rigid body of the chipmunk physics engine.
// The body is owned by the Glider: copies get their own body and
// destroying a Glider removes its body and shapes from the space it was added to.
type Glider struct {
	body *cp.Body
}

// NewGlider creates a glider with a circular body of the given mass and radius.
func NewGlider(mass, radius float64, pos Coordinates) Glider {
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	return Glider{body: body}
}

// Body gives access to the rigid body, e.g. to add it to a cp.Space.
func (g Glider) Body() *cp.Body {
	return g.body
}

func (g Glider) Pos() Coordinates {
	if g.body == nil {
		return Coordinates{}
	}

	return g.body.Position()
}

// Invoke steers the glider towards c. The body keeps its velocity and
// gets there once the space is stepped.
func (g *Glider) Invoke(c Coordinates) {
	if g.body == nil {
		return
	}

	g.body.SetVelocityVector(c.Sub(g.body.Position()))
}

func (g Glider) Equal(other Glider) bool {
	if g.body == nil || other.body == nil {
		return g.body == other.body
	}

	return g.body.Mass() == other.body.Mass() &&
		g.body.Position() == other.body.Position() &&
		g.body.Velocity() == other.body.Velocity()
}

// Clone copies the state of the body into a new body.
// The new body is not part of any space.
func (g Glider) Clone() Glider {
	if g.body == nil {
		return Glider{}
	}

	body := cp.NewBody(g.body.Mass(), g.body.Moment())
	body.SetPosition(g.body.Position())
	body.SetVelocityVector(g.body.Velocity())
	body.SetAngle(g.body.Angle())

	return Glider{body: body}
}

func (g *Glider) Destroy() {
	if g.body == nil {
		return
	}

	if space := g.body.Space(); space != nil {
		var shapes []*cp.Shape
		g.body.EachShape(func(shape *cp.Shape) {
			shapes = append(shapes, shape)
		})

		for _, shape := range shapes {
			space.RemoveShape(shape)
		}

		space.RemoveBody(g.body)
	}

	g.body = nil
}
