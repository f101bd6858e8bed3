// Package vpc declares the network topology: one VPC network with custom
// subnetworks and the two ingress firewall rules derived from it.
//
// [NewVPC] is a Pulumi component resource constructor; all provisioning,
// diffing, and dependency ordering is delegated to the Pulumi engine and
// the GCP provider. The component performs no rollback of its own: a
// failed creation leaves partial state for the engine to reconcile on the
// next run.
package vpc
