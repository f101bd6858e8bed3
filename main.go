// Package main is the Pulumi entry point for the VPC stack.
//
// The program declares one VPC network with custom subnetworks and two
// ingress firewall rules, and exports the created network and subnet
// identities as stack outputs. Settings come from stack configuration
// and the process environment; see internal/config.
package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/infra"
)

func main() {
	pulumi.Run(infra.Program())
}
