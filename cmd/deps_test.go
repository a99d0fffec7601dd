package cmd

import (
	"errors"
	"os"
	"testing"

	"trainbot/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_MissingKey(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "")
	require.NoError(t, os.Unsetenv("RAPIDAPI_KEY"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = newServices(false)
	assert.True(t, errors.Is(err, config.ErrMissingScheduleKey))
}

func TestNewServices_Wires(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "test-key")
	t.Setenv("GROQ_API_KEY", "")

	svc, err := newServices(true)
	require.NoError(t, err)
	assert.NotNil(t, svc.pipeline)
	assert.NotNil(t, svc.client)
	assert.Equal(t, "test-key", svc.secrets.ScheduleAPIKey)
}
