package network

import (
	"net"
	"strings"
)

// Address families.
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// Address is one IP address assigned to an interface.
type Address struct {
	IP        string
	Prefix    int
	Family    string
	LinkLocal bool
}

// InterfaceAddresses enumerates the IP addresses assigned to the named
// interface. Enumeration is best-effort: an unknown interface name or a
// failed lookup yields an empty list, not an error, so the presence decision
// stays with the sysfs attributes.
func InterfaceAddresses(name string) []Address {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return nil
	}

	result := make([]Address, 0, len(addrs))
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		result = append(result, AddressFromIPNet(ipNet))
	}

	return result
}

// AddressFromIPNet converts an assigned network prefix into an Address,
// classifying the family and tagging link-local addresses
// (169.254.0.0/16 for IPv4, fe80::/10 for IPv6).
func AddressFromIPNet(ipNet *net.IPNet) Address {
	ip := ipNet.IP

	family := FamilyIPv4
	if ip.To4() == nil {
		family = FamilyIPv6
	}

	ones, _ := ipNet.Mask.Size()

	ipStr := ip.String()

	// Remove the zone identifier from IPv6 addresses (fe80::1%eth0 -> fe80::1)
	if family == FamilyIPv6 {
		if idx := strings.Index(ipStr, "%"); idx != -1 {
			ipStr = ipStr[:idx]
		}
	}

	return Address{
		IP:        ipStr,
		Prefix:    ones,
		Family:    family,
		LinkLocal: ip.IsLinkLocalUnicast(),
	}
}
