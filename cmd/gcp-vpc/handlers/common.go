// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and tested independently of cobra.
// Stack operations go through the deploy.Stack interface; the factory
// variables below are replaced in tests for dependency injection.
package handlers

import (
	"context"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/config"
	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/deploy"
	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/infra"
)

// projectName is the Pulumi project all stacks belong to.
const projectName = "gcp-vpc"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newStack selects or creates the deployment stack.
	newStack = func(ctx context.Context, opts deploy.Options, program pulumi.RunFunc) (deploy.Stack, error) {
		return deploy.Select(ctx, opts, program)
	}

	// getenv reads process environment variables.
	getenv = os.Getenv
)

// stackOptions builds the stack selection options from the environment.
// The GCP project id comes from GCP_PROJECT and is stored as a secret
// config value; the region defaults like the program itself does.
func stackOptions(stackName string) deploy.Options {
	region := getenv(config.KeyRegion)
	if region == "" {
		region = config.DefaultRegion
	}
	return deploy.Options{
		StackName:   stackName,
		ProjectName: projectName,
		GCPProject:  getenv("GCP_PROJECT"),
		Region:      region,
	}
}

// selectStack wires the inline program into the named stack.
func selectStack(ctx context.Context, stackName string) (deploy.Stack, error) {
	return newStack(ctx, stackOptions(stackName), infra.Program())
}
