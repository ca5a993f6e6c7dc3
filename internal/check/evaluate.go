package check

import (
	"fmt"

	"github.com/hostprobe/check-interface/internal/config"
	"github.com/hostprobe/check-interface/internal/network"
)

// Evaluate derives the probe findings from operator expectations and the
// observed interface facts. It performs no I/O and is deterministic for
// identical inputs.
//
// Presence, link-down and unexpected-operstate findings short-circuit the
// evaluation because the remaining attributes are meaningless in those
// states. The speed/duplex, MTU and address checks are independent and all
// of them run, each contributing its own message.
func Evaluate(exp *config.Expectation, facts *network.Facts) Result {
	var result Result

	if !facts.Present {
		result.critical("Interface is not present")
		return result
	}

	switch facts.OperState {
	case network.OperStateDown:
		result.critical("Interface is DOWN")
		return result
	case network.OperStateUp:
		result.ok("Interface is up")
	default:
		result.unknown(fmt.Sprintf("Interface is %s", facts.OperState))
		return result
	}

	if exp.Speed > 0 {
		result.checkSpeed(exp, facts)
		result.checkDuplex(exp, facts)
	}

	if exp.MTU > 0 {
		result.checkMTU(exp, facts)
	}

	if exp.AddressCheck != config.AddressNone {
		result.checkAddresses(exp.AddressCheck, facts.Addresses)
	}

	return result
}

// checkSpeed compares the negotiated link speed against the expectation.
// A link faster than requested is noteworthy but not a failure.
func (r *Result) checkSpeed(exp *config.Expectation, facts *network.Facts) {
	switch {
	case facts.Speed > exp.Speed:
		r.warning(fmt.Sprintf("Negotiated interface speed (%d MBit/s) is greater than requested interface speed (%d MBit/s)", facts.Speed, exp.Speed))
	case facts.Speed < exp.Speed:
		r.degraded(exp.Critical, fmt.Sprintf("Negotiated interface speed (%d MBit/s) is below requested interface speed (%d MBit/s)", facts.Speed, exp.Speed))
	default:
		r.ok(fmt.Sprintf("Negotiated interface speed is %d MBit/s", facts.Speed))
	}
}

// checkDuplex compares the negotiated duplex mode against the expectation.
// A mode the kernel should never report ends up in the unknown bucket.
func (r *Result) checkDuplex(exp *config.Expectation, facts *network.Facts) {
	switch {
	case facts.Duplex != config.DuplexHalf && facts.Duplex != config.DuplexFull:
		r.unknown(fmt.Sprintf("Unknown duplex mode %s", facts.Duplex))
	case facts.Duplex != exp.Duplex:
		r.degraded(exp.Critical, fmt.Sprintf("Negotiated duplex mode is %s instead of %s", facts.Duplex, exp.Duplex))
	default:
		r.ok(fmt.Sprintf("Negotiated duplex mode is %s", facts.Duplex))
	}
}

func (r *Result) checkMTU(exp *config.Expectation, facts *network.Facts) {
	if facts.MTU != exp.MTU {
		r.degraded(exp.Critical, fmt.Sprintf("MTU size of %d does not match requested MTU size of %d", facts.MTU, exp.MTU))
	} else {
		r.ok(fmt.Sprintf("MTU size is %d", facts.MTU))
	}
}

// checkAddresses verifies that the interface carries a usable address of the
// requested family. Link-local addresses (169.254.0.0/16, fe80::/10) do not
// count as usable; an interface that only auto-configured a link-local
// address is effectively unreachable.
func (r *Result) checkAddresses(mode config.AddressCheck, addrs []network.Address) {
	var inScope, usable int
	for _, addr := range addrs {
		if mode == config.AddressIPv4 && addr.Family != network.FamilyIPv4 {
			continue
		}
		if mode == config.AddressIPv6 && addr.Family != network.FamilyIPv6 {
			continue
		}
		inScope++
		if !addr.LinkLocal {
			usable++
		}
	}

	switch {
	case inScope == 0:
		r.critical("No IP address assigned")
	case usable == 0:
		r.critical("Only link local address(es) are assigned")
	default:
		r.ok("IP address(es) assigned")
	}
}
