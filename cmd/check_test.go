package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psmcp/internal/config"
	"psmcp/internal/powerschool"
)

func runCheckForTest(t *testing.T) (string, error) {
	t.Helper()
	checkConfigPath = ""
	checkQuiet = false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := runCheck(cmd, nil)
	return buf.String(), err
}

func clearPowerSchoolEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvURL, config.EnvClientID, config.EnvClientSecret, config.EnvUsername, config.EnvPassword} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestCheckUnconfigured(t *testing.T) {
	clearPowerSchoolEnv(t)

	out, err := runCheckForTest(t)
	require.Error(t, err)

	var cfgErr *powerschool.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ExitCodeConfigError, getExitCode(err))
	assert.Contains(t, out, config.EnvClientSecret)
}

func TestCheckConfigured(t *testing.T) {
	clearPowerSchoolEnv(t)
	t.Setenv(config.EnvURL, "https://district.powerschool.com")
	t.Setenv(config.EnvClientID, "id")
	t.Setenv(config.EnvClientSecret, "secret")

	out, err := runCheckForTest(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration complete.")
}

func TestCheckLoneUsername(t *testing.T) {
	clearPowerSchoolEnv(t)
	t.Setenv(config.EnvURL, "https://district.powerschool.com")
	t.Setenv(config.EnvClientID, "id")
	t.Setenv(config.EnvClientSecret, "secret")
	t.Setenv(config.EnvUsername, "student")

	_, err := runCheckForTest(t)
	require.Error(t, err)
	assert.Equal(t, ExitCodeConfigError, getExitCode(err))
}
