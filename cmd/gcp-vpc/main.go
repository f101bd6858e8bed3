// Package main is the entry point for the gcp-vpc CLI.
//
// gcp-vpc deploys a fixed VPC topology (one network, custom subnetworks,
// internal and SSH ingress rules) to Google Cloud through the Pulumi
// Automation API, without requiring the Pulumi CLI workflow.
//
// Commands: preview, up, destroy, outputs, doctor, version.
//
// For detailed usage information, run:
//
//	gcp-vpc --help
package main

import (
	"fmt"
	"os"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
