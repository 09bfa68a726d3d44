// Package vss provides the Vehicle Signal Specification 3.0 tree as Go types.
//
// The *_gen.go files are generated from schema/vss.yaml by cmd/vss-gen. Each
// branch of the schema is a struct named by its path (CabinDoorWindow
// for Vehicle.Cabin.Door.Window) whose fields are its children:
//
//	v := vss.New()
//	v.Speed.Set(42)
//	seat, err := v.Cabin.Seat.Row(1)
//	if err != nil { ... }
//	driver, err := seat.Pos(1)
//	driver.Position.Set(500)
//
// Multi-instance branches are built eagerly. Their collection types expose
// the instances both as fields (Row1, Left) and through bounds-checked
// accessors (Row, Pos, Sensor, Element).
package vss

//go:generate go run ../../cmd/vss-gen -schema schema/vss.yaml -output . -package vss
