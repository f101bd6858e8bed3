package vpc

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v8/go/gcp/compute"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/config"
)

// Firewall rule names. Exactly these two rules exist per topology; callers
// needing further restrictions extend the component.
const (
	RuleAllowInternal = "allow-internal"
	RuleAllowSSH      = "allow-ssh"
)

// allPorts covers the full TCP/UDP port space in GCP range notation.
const allPorts = "0-65535"

// VPCArgs are the inputs for constructing a VPC topology.
type VPCArgs struct {
	// Region all subnetworks are created in.
	Region string
	// Subnets to create, in order. May be empty, which yields a network
	// with no subnets.
	Subnets []config.SubnetSpec
	// SourceRanges feed the allow-internal rule.
	SourceRanges []string
	// SSHSourceRanges feed the allow-ssh rule. Required; the component
	// never substitutes SourceRanges for them.
	SSHSourceRanges []string
	// InternalTargetTags are the network tags the allow-internal rule
	// targets. Required; instances must carry one of these tags for the
	// rule to apply to them.
	InternalTargetTags []string
}

// VPC is a component resource owning one network, its subnetworks, and the
// two firewall rules. Every child references the network created here.
type VPC struct {
	pulumi.ResourceState

	network  *compute.Network
	subnets  []*compute.Subnetwork
	internal *compute.Firewall
	ssh      *compute.Firewall
}

// SubnetSummary is the exported identity of one created subnetwork.
type SubnetSummary struct {
	Name pulumi.StringOutput
	ID   pulumi.IDOutput
}

// Summary is the read-only view of a constructed topology, surfaced as
// stack outputs by the program entry.
type Summary struct {
	NetworkName pulumi.StringOutput
	NetworkID   pulumi.IDOutput
	Subnets     []SubnetSummary
}

// NewVPC creates the network, one subnetwork per entry in args.Subnets (in
// input order, all with private Google access), and the allow-internal and
// allow-ssh ingress rules.
//
// Construction fails up front when the topology name is empty, no SSH
// source ranges are given, or no internal target tags are given. The SSH
// rule's sources must be supplied separately from the general source
// ranges, and the internal rule's target tags must be assigned explicitly.
func NewVPC(ctx *pulumi.Context, name string, args *VPCArgs, opts ...pulumi.ResourceOption) (*VPC, error) {
	if name == "" {
		return nil, fmt.Errorf("vpc name is required")
	}
	if args == nil {
		args = &VPCArgs{}
	}
	if len(args.SSHSourceRanges) == 0 {
		return nil, fmt.Errorf("vpc %s: ssh source ranges are required and may not reuse the general source ranges implicitly", name)
	}
	if len(args.InternalTargetTags) == 0 {
		return nil, fmt.Errorf("vpc %s: internal target tags are required", name)
	}

	v := &VPC{}
	if err := ctx.RegisterComponentResource("gcpvpc:index:VPC", name, v, opts...); err != nil {
		return nil, err
	}

	network, err := compute.NewNetwork(ctx, name, &compute.NetworkArgs{
		Name:                  pulumi.String(name),
		AutoCreateSubnetworks: pulumi.Bool(false),
	}, pulumi.Parent(v))
	if err != nil {
		return nil, err
	}
	v.network = network

	for _, spec := range args.Subnets {
		subnet, err := compute.NewSubnetwork(ctx, spec.Name, &compute.SubnetworkArgs{
			Name:                  pulumi.String(spec.Name),
			IpCidrRange:           pulumi.String(spec.CIDRRange),
			Region:                pulumi.String(args.Region),
			Network:               network.ID(),
			PrivateIpGoogleAccess: pulumi.Bool(true),
		}, pulumi.Parent(v))
		if err != nil {
			return nil, err
		}
		v.subnets = append(v.subnets, subnet)
	}

	internal, err := compute.NewFirewall(ctx, RuleAllowInternal, &compute.FirewallArgs{
		Network:   network.ID(),
		Direction: pulumi.String("INGRESS"),
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("tcp"),
				Ports:    pulumi.StringArray{pulumi.String(allPorts)},
			},
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("udp"),
				Ports:    pulumi.StringArray{pulumi.String(allPorts)},
			},
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("icmp"),
			},
		},
		SourceRanges: toStringArray(args.SourceRanges),
		TargetTags:   toStringArray(args.InternalTargetTags),
		LogConfig: &compute.FirewallLogConfigArgs{
			Metadata: pulumi.String("INCLUDE_ALL_METADATA"),
		},
	}, pulumi.Parent(v))
	if err != nil {
		return nil, err
	}
	v.internal = internal

	ssh, err := compute.NewFirewall(ctx, RuleAllowSSH, &compute.FirewallArgs{
		Network:   network.ID(),
		Direction: pulumi.String("INGRESS"),
		Allows: compute.FirewallAllowArray{
			&compute.FirewallAllowArgs{
				Protocol: pulumi.String("tcp"),
				Ports:    pulumi.StringArray{pulumi.String("22")},
			},
		},
		SourceRanges: toStringArray(args.SSHSourceRanges),
		LogConfig: &compute.FirewallLogConfigArgs{
			Metadata: pulumi.String("INCLUDE_ALL_METADATA"),
		},
	}, pulumi.Parent(v))
	if err != nil {
		return nil, err
	}
	v.ssh = ssh

	if err := ctx.RegisterResourceOutputs(v, pulumi.Map{
		"networkName": network.Name,
		"networkId":   network.ID(),
	}); err != nil {
		return nil, err
	}

	return v, nil
}

// Summary returns the network and per-subnet identities in creation order.
// Pure read of already-registered resource handles; no side effects.
func (v *VPC) Summary() Summary {
	s := Summary{
		NetworkName: v.network.Name,
		NetworkID:   v.network.ID(),
	}
	for _, subnet := range v.subnets {
		s.Subnets = append(s.Subnets, SubnetSummary{
			Name: subnet.Name,
			ID:   subnet.ID(),
		})
	}
	return s
}

func toStringArray(values []string) pulumi.StringArray {
	arr := make(pulumi.StringArray, 0, len(values))
	for _, value := range values {
		arr = append(arr, pulumi.String(value))
	}
	return arr
}
