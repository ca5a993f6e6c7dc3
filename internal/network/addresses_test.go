package network_test

import (
	"net"
	"testing"

	"github.com/hostprobe/check-interface/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseCIDR(t *testing.T, s string) *net.IPNet {
	t.Helper()
	ip, ipNet, err := net.ParseCIDR(s)
	require.NoError(t, err)
	ipNet.IP = ip
	return ipNet
}

func TestAddressFromIPNet(t *testing.T) {
	tests := []struct {
		name     string
		cidr     string
		expected network.Address
	}{
		{
			name:     "routable ipv4",
			cidr:     "192.0.2.10/24",
			expected: network.Address{IP: "192.0.2.10", Prefix: 24, Family: network.FamilyIPv4},
		},
		{
			name:     "link local ipv4",
			cidr:     "169.254.1.1/16",
			expected: network.Address{IP: "169.254.1.1", Prefix: 16, Family: network.FamilyIPv4, LinkLocal: true},
		},
		{
			name:     "boundary of the ipv4 link local range",
			cidr:     "169.255.0.1/16",
			expected: network.Address{IP: "169.255.0.1", Prefix: 16, Family: network.FamilyIPv4},
		},
		{
			name:     "routable ipv6",
			cidr:     "2001:db8::1/64",
			expected: network.Address{IP: "2001:db8::1", Prefix: 64, Family: network.FamilyIPv6},
		},
		{
			name:     "link local ipv6",
			cidr:     "fe80::1/64",
			expected: network.Address{IP: "fe80::1", Prefix: 64, Family: network.FamilyIPv6, LinkLocal: true},
		},
		{
			name:     "upper edge of fe80::/10",
			cidr:     "febf::1/64",
			expected: network.Address{IP: "febf::1", Prefix: 64, Family: network.FamilyIPv6, LinkLocal: true},
		},
		{
			name:     "just outside fe80::/10",
			cidr:     "fec0::1/64",
			expected: network.Address{IP: "fec0::1", Prefix: 64, Family: network.FamilyIPv6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := network.AddressFromIPNet(mustParseCIDR(t, tt.cidr))
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestInterfaceAddresses_UnknownInterface(t *testing.T) {
	// Enumeration is best-effort: unknown names yield an empty list.
	assert.Empty(t, network.InterfaceAddresses("does-not-exist0"))
}

func TestInterfaceAddresses_Loopback(t *testing.T) {
	ifaces, err := net.Interfaces()
	require.NoError(t, err)

	var loopback string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			loopback = iface.Name
			break
		}
	}
	if loopback == "" {
		t.Skip("No loopback interface found for testing")
	}

	addresses := network.InterfaceAddresses(loopback)

	for _, addr := range addresses {
		assert.NotEmpty(t, addr.IP)
		assert.Greater(t, addr.Prefix, 0)
		assert.Contains(t, []string{network.FamilyIPv4, network.FamilyIPv6}, addr.Family)
		assert.NotContains(t, addr.IP, "%")
	}
}
