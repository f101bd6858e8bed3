// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gcp-vpc CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcp-vpc",
		Short: "Deploy the GCP VPC stack through the Pulumi Automation API",
	}

	cmd.AddCommand(Preview())
	cmd.AddCommand(Up())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Outputs())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())

	return cmd
}
