// Package vehicle contains a few vehicles that move around on a plane.
// None of them share a base type, yet all of them can be kept in a Vehicle.
package vehicle

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/poly"
)

type Coordinates = cp.Vector

// Vehicle holds any type that can move to some Coordinates.
type Vehicle = poly.Value[Coordinates]

// Of stores a comparable vehicle in a Vehicle.
func Of[T comparable, PT poly.Storable[T, Coordinates]](value T) Vehicle {
	return poly.New[Coordinates, T, PT](value)
}

// OfEquatable stores a vehicle that brings its own Equal method in a Vehicle.
func OfEquatable[T any, PT poly.EquatableStorable[T, Coordinates]](value T) Vehicle {
	return poly.NewEquatable[Coordinates, T, PT](value)
}

var _ = poly.Validate[Coordinates, Boat]()
var _ = poly.Validate[Coordinates, MotorBike]()
var _ = poly.Validate[Coordinates, Horse]()
var _ = poly.ValidateEquatable[Coordinates, Truck]()
var _ = poly.ValidateEquatable[Coordinates, Glider]()

type Boat struct {
	Pos Coordinates
}

func (b *Boat) Invoke(c Coordinates) {
	b.Pos = c
}

// MotorBike does not track where it is.
type MotorBike struct{}

func (MotorBike) Invoke(Coordinates) {
	// do motorbike things
}

type Horse struct {
	Name string
	Pos  Coordinates
}

func (h *Horse) Invoke(c Coordinates) {
	h.Pos = c
}
