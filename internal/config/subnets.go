package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadSubnetsFile reads a subnet layout from a YAML file of the form:
//
//	subnets:
//	  - name: vpc-subnet-1
//	    cidrRange: 10.0.0.0/16
//	  - name: vpc-subnet-2
//	    cidrRange: 10.1.0.0/16
//
// Order is preserved; the topology creates subnetworks in file order.
// CIDR well-formedness is not checked here, only file shape.
func LoadSubnetsFile(path string) ([]SubnetSpec, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subnets file: %w", err)
	}

	var rawFile map[string]interface{}
	if err := yaml.Unmarshal(data, &rawFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	rawSubnets, ok := rawFile["subnets"]
	if !ok {
		return nil, fmt.Errorf("subnets file %s has no 'subnets' key", path)
	}

	var subnets []SubnetSpec
	if err := mapstructure.Decode(rawSubnets, &subnets); err != nil {
		return nil, fmt.Errorf("failed to decode subnets: %w", err)
	}

	for i, s := range subnets {
		if s.Name == "" {
			return nil, fmt.Errorf("subnet entry %d has no name", i)
		}
		if s.CIDRRange == "" {
			return nil, fmt.Errorf("subnet %q has no cidrRange", s.Name)
		}
	}

	return subnets, nil
}
