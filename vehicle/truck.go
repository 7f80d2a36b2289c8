package vehicle

import (
	"slices"
)

// Truck remembers every place it was sent to.
type Truck struct {
	Route []Coordinates
}

func (t *Truck) Invoke(c Coordinates) {
	t.Route = append(t.Route, c)
}

// Pos returns the last waypoint, or the origin if the truck never moved.
func (t Truck) Pos() Coordinates {
	if len(t.Route) == 0 {
		return Coordinates{}
	}

	return t.Route[len(t.Route)-1]
}

func (t Truck) Equal(other Truck) bool {
	return slices.Equal(t.Route, other.Route)
}

func (t Truck) Clone() Truck {
	return Truck{Route: slices.Clone(t.Route)}
}
