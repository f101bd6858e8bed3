package config

import (
	"fmt"
)

// ValidRegions contains the GCP regions this topology may be deployed to.
// https://cloud.google.com/compute/docs/regions-zones
var ValidRegions = map[string]bool{
	"us-central1":             true,
	"us-east1":                true,
	"us-east4":                true,
	"us-west1":                true,
	"us-west2":                true,
	"us-west3":                true,
	"us-west4":                true,
	"europe-west1":            true,
	"europe-west2":            true,
	"europe-west3":            true,
	"europe-west6":            true,
	"asia-east1":              true,
	"asia-east2":              true,
	"asia-northeast1":         true,
	"asia-northeast2":         true,
	"asia-northeast3":         true,
	"asia-south1":             true,
	"asia-southeast1":         true,
	"asia-southeast2":         true,
	"northamerica-northeast1": true,
	"southamerica-east1":      true,
	"australia-southeast1":    true,
}

// Validate checks the settings for mistakes that would otherwise surface as
// provider API rejections mid-deployment: unknown region, malformed CIDR
// ranges, overlapping subnets.
//
// The deployed program does NOT call this; it submits settings as-is and
// lets the provider reject them, keeping failure behavior identical to the
// engine's. Validate backs the doctor command only.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if !ValidRegions[s.Region] {
		return fmt.Errorf("unknown region %q", s.Region)
	}

	if err := s.validateSubnets(); err != nil {
		return fmt.Errorf("subnet validation failed: %w", err)
	}

	for _, r := range append(append([]string{}, s.SourceRanges...), s.SSHSourceRanges...) {
		if _, err := parseIPv4CIDR(r); err != nil {
			return fmt.Errorf("source range validation failed: %w", err)
		}
	}

	if len(s.SSHSourceRanges) == 0 {
		return fmt.Errorf("ssh source ranges are required")
	}
	if len(s.InternalTargetTags) == 0 {
		return fmt.Errorf("internal target tags are required")
	}

	return nil
}

func (s *Settings) validateSubnets() error {
	seen := map[string]bool{}
	for _, subnet := range s.Subnets {
		if subnet.Name == "" {
			return fmt.Errorf("subnet with range %q has no name", subnet.CIDRRange)
		}
		if seen[subnet.Name] {
			return fmt.Errorf("duplicate subnet name %q", subnet.Name)
		}
		seen[subnet.Name] = true

		if _, err := parseIPv4CIDR(subnet.CIDRRange); err != nil {
			return fmt.Errorf("subnet %q: %w", subnet.Name, err)
		}
	}

	for i := 0; i < len(s.Subnets); i++ {
		for j := i + 1; j < len(s.Subnets); j++ {
			overlap, err := RangesOverlap(s.Subnets[i].CIDRRange, s.Subnets[j].CIDRRange)
			if err != nil {
				return err
			}
			if overlap {
				return fmt.Errorf("subnets %q and %q have overlapping ranges",
					s.Subnets[i].Name, s.Subnets[j].Name)
			}
		}
	}

	return nil
}
