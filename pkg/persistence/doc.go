// Package persistence saves and restores the data point values of a vehicle
// tree as JSON snapshots.
//
// Snapshots key values by absolute path (Vehicle.Cabin.Seat.Row1.Pos1.Position)
// and only hold data points that have a value. Restoring applies what it can
// and reports paths that no longer exist or whose values do not fit.
package persistence
