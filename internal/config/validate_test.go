package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		Name:   "vpc",
		Region: "us-central1",
		Subnets: []SubnetSpec{
			{Name: "vpc-subnet-1", CIDRRange: "10.0.0.0/16"},
			{Name: "vpc-subnet-2", CIDRRange: "10.1.0.0/16"},
		},
		SourceRanges:       []string{"10.0.0.0/8"},
		SSHSourceRanges:    []string{"203.0.113.5/32"},
		InternalTargetTags: []string{"internal"},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validSettings().Validate())
}

func TestValidate_EmptySubnetListOK(t *testing.T) {
	t.Parallel()
	s := validSettings()
	s.Subnets = nil
	require.NoError(t, s.Validate())
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Settings)
		errMsg string
	}{
		{
			name:   "missing name",
			mutate: func(s *Settings) { s.Name = "" },
			errMsg: "name is required",
		},
		{
			name:   "unknown region",
			mutate: func(s *Settings) { s.Region = "mars-central1" },
			errMsg: "unknown region",
		},
		{
			name: "overlapping subnets",
			mutate: func(s *Settings) {
				s.Subnets[1].CIDRRange = "10.0.128.0/17"
			},
			errMsg: "overlapping ranges",
		},
		{
			name: "duplicate subnet name",
			mutate: func(s *Settings) {
				s.Subnets[1].Name = s.Subnets[0].Name
			},
			errMsg: "duplicate subnet name",
		},
		{
			name: "malformed subnet range",
			mutate: func(s *Settings) {
				s.Subnets[0].CIDRRange = "10.0.0.0"
			},
			errMsg: "invalid CIDR range",
		},
		{
			name: "malformed source range",
			mutate: func(s *Settings) {
				s.SourceRanges = []string{"wide-open"}
			},
			errMsg: "source range validation failed",
		},
		{
			name: "malformed ssh range",
			mutate: func(s *Settings) {
				s.SSHSourceRanges = []string{"203.0.113.5"}
			},
			errMsg: "source range validation failed",
		},
		{
			name:   "no ssh ranges",
			mutate: func(s *Settings) { s.SSHSourceRanges = nil },
			errMsg: "ssh source ranges are required",
		},
		{
			name:   "no target tags",
			mutate: func(s *Settings) { s.InternalTargetTags = nil },
			errMsg: "internal target tags are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := validSettings()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
