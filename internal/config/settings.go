package config

import (
	"fmt"
	"strings"
)

// Configuration keys consumed by [Load]. The same keys are used for
// environment variables and, mapped through the caller's getter, for
// Pulumi stack configuration values.
const (
	// KeyName is the topology name; subnets and firewall rules derive
	// their default names from it.
	KeyName = "VPC_NAME"
	// KeyRegion is the GCP region all subnetworks are created in.
	KeyRegion = "GCP_REGION"
	// KeyCIDRRange1 is the CIDR range of the first default subnet.
	KeyCIDRRange1 = "VPC_CIDR_RANGE_1"
	// KeyCIDRRange2 is the CIDR range of the second default subnet.
	KeyCIDRRange2 = "VPC_CIDR_RANGE_2"
	// KeySourceRange holds the comma-separated source ranges for the
	// internal allow rule.
	KeySourceRange = "VPC_SOURCE_RANGE"
	// KeySSHSourceRange holds the comma-separated trusted ranges for the
	// SSH allow rule. Required; there is no fallback to KeySourceRange.
	KeySSHSourceRange = "VPC_SSH_SOURCE_RANGE"
	// KeyInternalTargetTags holds the comma-separated network tags the
	// internal allow rule applies to. Required.
	KeyInternalTargetTags = "VPC_INTERNAL_TARGET_TAGS"
	// KeySubnetsFile optionally points at a YAML file describing the
	// subnet layout, replacing the two default subnets.
	KeySubnetsFile = "VPC_SUBNETS_FILE"
)

// Defaults applied by [Load] when a key is unset.
const (
	DefaultName       = "vpc"
	DefaultRegion     = "us-central1"
	DefaultCIDRRange1 = "10.0.0.0/16"
	DefaultCIDRRange2 = "10.1.0.0/16"
	DefaultSource     = "10.0.0.0/8"
)

// SubnetSpec describes one subnetwork to create: its name and CIDR range.
// The region and private-Google-access flag are topology-wide and not
// configurable per subnet.
type SubnetSpec struct {
	Name      string `yaml:"name" mapstructure:"name"`
	CIDRRange string `yaml:"cidrRange" mapstructure:"cidrRange"`
}

// Settings is the resolved deployment configuration for one VPC topology.
type Settings struct {
	Name               string
	Region             string
	Subnets            []SubnetSpec
	SourceRanges       []string
	SSHSourceRanges    []string
	InternalTargetTags []string
}

// Getter returns the raw value for a configuration key, or "" when unset.
// Callers decide where values come from: plain os.Getenv for the CLI,
// or Pulumi stack configuration layered over the environment for the
// deployed program.
type Getter func(key string) string

// Load resolves Settings from the given source, applying defaults for the
// region, subnet CIDRs, and internal source ranges.
//
// The SSH source ranges and internal target tags have no defaults and no
// fallback: the SSH rule must never silently inherit the general source
// ranges, and the internal rule's target tags must be assigned explicitly.
// Load fails when either is absent.
func Load(get Getter) (*Settings, error) {
	s := &Settings{
		Name:   valueOr(get, KeyName, DefaultName),
		Region: valueOr(get, KeyRegion, DefaultRegion),
	}

	subnets, err := resolveSubnets(get, s.Name)
	if err != nil {
		return nil, err
	}
	s.Subnets = subnets

	s.SourceRanges = splitList(valueOr(get, KeySourceRange, DefaultSource))

	s.SSHSourceRanges = splitList(get(KeySSHSourceRange))
	if len(s.SSHSourceRanges) == 0 {
		return nil, fmt.Errorf("%s is required: the SSH rule does not fall back to %s", KeySSHSourceRange, KeySourceRange)
	}

	s.InternalTargetTags = splitList(get(KeyInternalTargetTags))
	if len(s.InternalTargetTags) == 0 {
		return nil, fmt.Errorf("%s is required: the internal rule's target tags must be assigned explicitly", KeyInternalTargetTags)
	}

	return s, nil
}

// resolveSubnets builds the subnet list, either from the YAML subnets file
// or from the two default CIDR range keys.
func resolveSubnets(get Getter, name string) ([]SubnetSpec, error) {
	if path := get(KeySubnetsFile); path != "" {
		subnets, err := LoadSubnetsFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load subnets file: %w", err)
		}
		return subnets, nil
	}

	return []SubnetSpec{
		{Name: name + "-subnet-1", CIDRRange: valueOr(get, KeyCIDRRange1, DefaultCIDRRange1)},
		{Name: name + "-subnet-2", CIDRRange: valueOr(get, KeyCIDRRange2, DefaultCIDRRange2)},
	}, nil
}

func valueOr(get Getter, key, fallback string) string {
	if v := get(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated value into trimmed entries,
// dropping empties.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
