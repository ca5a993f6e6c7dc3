// Package network collects the observed state of a single network interface:
// sysfs attributes plus the assigned IP addresses.
package network

import (
	"errors"

	"github.com/hostprobe/check-interface/internal/sysfs"
)

// Operational states with defined probe semantics. Any other value reported
// by the kernel is surfaced through the unknown bucket by the evaluator.
const (
	OperStateUp   = "up"
	OperStateDown = "down"
)

// Facts is a point-in-time snapshot of one interface. It is constructed once
// per invocation and read-only thereafter. Numeric fields hold -1 when the
// corresponding attribute could not be read.
type Facts struct {
	Present   bool
	OperState string
	Speed     int
	Duplex    string
	MTU       int
	Addresses []Address
}

// Collect reads the interface attributes in a fixed order (operstate,
// duplex, mtu, speed) and enumerates assigned addresses.
//
// A missing attribute means the interface is absent or not fully
// initialized; collection stops and the snapshot so far is returned with
// Present left false. That is a valid observation, not an error. An
// attribute that exists but does not parse as an integer is a data-format
// error and aborts the probe.
func Collect(reader *sysfs.Reader, name string) (*Facts, error) {
	facts := &Facts{
		OperState: "unknown",
		Speed:     -1,
		Duplex:    "unknown",
		MTU:       -1,
		Addresses: InterfaceAddresses(name),
	}

	operstate, err := reader.Attr(name, "operstate")
	if err != nil {
		return facts, nil
	}
	facts.OperState = operstate

	duplex, err := reader.Attr(name, "duplex")
	if err != nil {
		return facts, nil
	}
	facts.Duplex = duplex

	mtu, err := reader.IntAttr(name, "mtu")
	if err != nil {
		if errors.Is(err, sysfs.ErrNotPresent) {
			return facts, nil
		}
		return nil, err
	}
	facts.MTU = mtu

	speed, err := reader.IntAttr(name, "speed")
	if err != nil {
		if errors.Is(err, sysfs.ErrNotPresent) {
			return facts, nil
		}
		return nil, err
	}
	facts.Speed = speed

	// All four attributes were readable, so the interface exists.
	facts.Present = true

	return facts, nil
}
