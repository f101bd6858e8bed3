package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/deploy"
)

func TestOutputs_ReadsWithoutDeploying(t *testing.T) {
	saveAndRestoreFactories(t)
	stubEnv(map[string]string{})

	mock := &deploy.MockStack{
		OutputsFunc: func(context.Context) (auto.OutputMap, error) {
			return auto.OutputMap{"networkName": {Value: "vpc"}}, nil
		},
	}
	stubStack(mock)

	require.NoError(t, Outputs(context.Background(), "dev"))
	assert.Equal(t, []string{"outputs"}, mock.Calls)
}

func TestOutputs_Error(t *testing.T) {
	saveAndRestoreFactories(t)
	stubEnv(map[string]string{})

	mock := &deploy.MockStack{
		OutputsFunc: func(context.Context) (auto.OutputMap, error) {
			return nil, errors.New("no previous deployment")
		},
	}
	stubStack(mock)

	err := Outputs(context.Background(), "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read outputs")
}
