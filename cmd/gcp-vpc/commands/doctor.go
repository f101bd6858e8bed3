package commands

import (
	"github.com/spf13/cobra"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/cmd/gcp-vpc/handlers"
)

// Doctor returns the command for offline settings diagnostics.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate the resolved settings without touching the provider",
		Long: `Validate the resolved settings without touching the provider.

Checks region, CIDR well-formedness, and subnet overlap, and warns about
suspicious range combinations. Exits non-zero when the settings would be
rejected, so CI can gate on it before a preview.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor()
		},
	}
}
