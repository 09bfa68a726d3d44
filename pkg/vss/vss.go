package vss

import (
	_ "embed"
	"sync"
)

// Version is the VSS release the tree was generated from.
const Version = "3.0"

// RootName is the name of the tree root.
const RootName = "Vehicle"

//go:embed schema/vss.yaml
var schema []byte

// Schema returns the YAML schema the tree was generated from.
func Schema() []byte {
	out := make([]byte, len(schema))
	copy(out, schema)
	return out
}

// New builds an independent vehicle tree.
func New() *Vehicle {
	return NewVehicle(RootName, nil)
}

var defaultVehicle = sync.OnceValue(New)

// Default returns the process-wide tree, built on first use.
func Default() *Vehicle {
	return defaultVehicle()
}
