package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalivaraprasad-gonapa/GCP-Pulumi/internal/deploy"
)

func TestDestroy_RequiresConfirmation(t *testing.T) {
	saveAndRestoreFactories(t)
	stubEnv(map[string]string{})

	mock := &deploy.MockStack{}
	stubStack(mock)

	err := Destroy(context.Background(), "dev", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Empty(t, mock.Calls, "no stack operation may run without confirmation")
}

func TestDestroy_Confirmed(t *testing.T) {
	saveAndRestoreFactories(t)
	stubEnv(map[string]string{})

	mock := &deploy.MockStack{}
	stubStack(mock)

	require.NoError(t, Destroy(context.Background(), "dev", true))
	assert.Equal(t, []string{"destroy"}, mock.Calls)
}

func TestDestroy_Error(t *testing.T) {
	saveAndRestoreFactories(t)
	stubEnv(map[string]string{})

	mock := &deploy.MockStack{
		DestroyFunc: func(context.Context) error {
			return errors.New("resource in use")
		},
	}
	stubStack(mock)

	err := Destroy(context.Background(), "dev", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destroy failed")
}
