// Package config defines the deployment settings model for the VPC stack.
//
// [Settings] is the canonical representation of one network topology's
// desired state: region, subnet layout, and the source ranges the two
// firewall rules are derived from. It is produced from process environment
// variables and Pulumi stack configuration, with an optional YAML subnets
// file for layouts beyond the two default subnets.
package config
