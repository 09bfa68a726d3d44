// Package model implements the node runtime of the vehicle signal tree.
//
// # Tree Structure
//
// The tree mirrors the Vehicle Signal Specification: branches group related
// signals and data points carry the typed values.
//
//	Vehicle
//	├── Cabin
//	│   ├── Door (collection)
//	│   │   ├── Row1
//	│   │   │   ├── Left
//	│   │   │   │   ├── IsOpen      (actuator, boolean)
//	│   │   │   │   └── Window
//	│   │   │   └── Right
//	│   │   └── Row2
//	│   └── DoorCount               (attribute, uint8)
//	└── Speed                       (sensor, float)
//
// Every node stores its name and a non-owning reference to its parent. The
// parent is set once at construction and never changes. Branches keep their
// children in declaration order.
//
// # Data Points
//
// A DataPoint[T] is a typed leaf with a role:
//   - Sensor: a measured, read-only value
//   - Actuator: a commandable target value
//   - Attribute: a static configuration value
//
// Unit, value range and allowed values are carried as Metadata only. Values
// are never validated against them and never converted between units.
//
// # Collections
//
// Multi-instance branches (doors per row and side, seats per row and
// position) are built eagerly. Range and Dictionary give bounds-checked access
// to the pre-built instances:
//
//	row, err := vehicle.Cabin.Door.Row(1)
//	door, err := row.Element("Left")
//
// An index outside the declared bounds fails with an *IndexError wrapping
// ErrIndexOutOfRange.
//
// # Change Notification
//
// Branch.Subscribe registers a Subscriber that is told about every value
// change of a data point below the branch.
package model
