// Package infra assembles the Pulumi program for the VPC stack: settings
// resolution, topology construction, and stack output exports. The same
// program backs the plain `pulumi up` entry point and the automation CLI.
package infra

import (
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	pulumiconfig "github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/config"
	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/vpc"
)

// Stack output names.
const (
	OutputNetworkName = "networkName"
	OutputNetworkID   = "networkId"
	OutputSubnets     = "subnets"
)

// stackConfigKeys maps settings keys to their Pulumi stack configuration
// names. Stack configuration takes precedence over the environment, which
// is how CI wires the project id and the trusted SSH ranges as secrets.
var stackConfigKeys = map[string]string{
	config.KeyName:               "vpcName",
	config.KeyRegion:             "region",
	config.KeyCIDRRange1:         "cidrRange1",
	config.KeyCIDRRange2:         "cidrRange2",
	config.KeySourceRange:        "sourceRanges",
	config.KeySSHSourceRange:     "sshSourceRanges",
	config.KeyInternalTargetTags: "internalTargetTags",
	config.KeySubnetsFile:        "subnetsFile",
}

// Program returns the Pulumi program declaring one VPC topology and
// exporting its summary.
func Program() pulumi.RunFunc {
	return func(ctx *pulumi.Context) error {
		settings, err := LoadSettings(ctx)
		if err != nil {
			return err
		}

		topology, err := vpc.NewVPC(ctx, settings.Name, &vpc.VPCArgs{
			Region:             settings.Region,
			Subnets:            settings.Subnets,
			SourceRanges:       settings.SourceRanges,
			SSHSourceRanges:    settings.SSHSourceRanges,
			InternalTargetTags: settings.InternalTargetTags,
		})
		if err != nil {
			return err
		}

		export(ctx, topology.Summary())
		return nil
	}
}

// LoadSettings resolves Settings from stack configuration layered over the
// process environment.
func LoadSettings(ctx *pulumi.Context) (*config.Settings, error) {
	conf := pulumiconfig.New(ctx, "")
	return config.Load(func(key string) string {
		if name, ok := stackConfigKeys[key]; ok {
			if value := conf.Get(name); value != "" {
				return value
			}
		}
		return os.Getenv(key)
	})
}

// export surfaces the topology summary as stack outputs: the network's
// name and id, and one {name, id} pair per subnet in creation order.
func export(ctx *pulumi.Context, summary vpc.Summary) {
	ctx.Export(OutputNetworkName, summary.NetworkName)
	ctx.Export(OutputNetworkID, summary.NetworkID)

	subnets := make(pulumi.Array, 0, len(summary.Subnets))
	for _, subnet := range summary.Subnets {
		subnets = append(subnets, pulumi.Map{
			"name": subnet.Name,
			"id":   subnet.ID,
		})
	}
	ctx.Export(OutputSubnets, subnets)
}
