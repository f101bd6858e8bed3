package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "disjoint siblings", a: "10.0.0.0/16", b: "10.1.0.0/16", expected: false},
		{name: "identical", a: "10.0.0.0/16", b: "10.0.0.0/16", expected: true},
		{name: "nested", a: "10.0.0.0/8", b: "10.0.64.0/19", expected: true},
		{name: "nested reversed", a: "10.0.64.0/19", b: "10.0.0.0/8", expected: true},
		{name: "different private blocks", a: "172.16.0.0/12", b: "192.168.0.0/16", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			overlap, err := RangesOverlap(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, overlap)
		})
	}
}

func TestRangesOverlap_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := RangesOverlap("not-a-cidr", "10.0.0.0/16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CIDR range")

	_, err = RangesOverlap("10.0.0.0/16", "2001:db8::/32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only IPv4 ranges are supported")
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		outer, inner string
		expected     bool
	}{
		{name: "contains subnet", outer: "10.0.0.0/8", inner: "10.1.0.0/16", expected: true},
		{name: "contains itself", outer: "10.0.0.0/16", inner: "10.0.0.0/16", expected: true},
		{name: "inner wider than outer", outer: "10.0.0.0/16", inner: "10.0.0.0/8", expected: false},
		{name: "disjoint", outer: "10.0.0.0/8", inner: "192.168.0.0/16", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			contains, err := RangeContains(tt.outer, tt.inner)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, contains)
		})
	}
}
