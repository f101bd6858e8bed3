package config

import (
	"fmt"
	"net"
)

// parseIPv4CIDR parses a CIDR range and rejects anything that is not IPv4.
// GCP subnetwork primary ranges in this topology are IPv4 only.
func parseIPv4CIDR(cidr string) (*net.IPNet, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR range %q: %w", cidr, err)
	}
	if network.IP.To4() == nil {
		return nil, fmt.Errorf("only IPv4 ranges are supported, got %q", cidr)
	}
	return network, nil
}

// RangesOverlap reports whether two CIDR ranges share any addresses.
func RangesOverlap(a, b string) (bool, error) {
	netA, err := parseIPv4CIDR(a)
	if err != nil {
		return false, err
	}
	netB, err := parseIPv4CIDR(b)
	if err != nil {
		return false, err
	}
	return netA.Contains(netB.IP) || netB.Contains(netA.IP), nil
}

// RangeContains reports whether the outer CIDR range fully contains the
// inner one.
func RangeContains(outer, inner string) (bool, error) {
	netOuter, err := parseIPv4CIDR(outer)
	if err != nil {
		return false, err
	}
	netInner, err := parseIPv4CIDR(inner)
	if err != nil {
		return false, err
	}
	if !netOuter.Contains(netInner.IP) {
		return false, nil
	}
	outerSize, _ := netOuter.Mask.Size()
	innerSize, _ := netInner.Mask.Size()
	return innerSize >= outerSize, nil
}
