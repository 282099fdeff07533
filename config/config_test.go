package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyEndpoint, "", "")
	fs.String(KeyDefinition, "", "")
	fs.String(KeyAgentName, "", "")
	fs.String(KeyModel, "", "")
	fs.String(KeyAPIVersion, "v1", "")
	fs.String(KeyScope, "https://ai.azure.com/.default", "")
	fs.String(KeyLogLevel, "warn", "")
	fs.String(KeyLogFormat, "console", "")
	fs.String(KeyLogFile, "", "")
	fs.Bool(KeyVerbose, false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Flags(t *testing.T) {
	flags := newFlags(t,
		"--endpoint", "https://demo.services.ai.azure.com/api/projects/p",
		"--definition", " agents/diag.json ",
		"--model", "gpt-4o-mini",
		"--verbose",
	)

	cfg, err := Load(flags)

	require.NoError(t, err)
	assert.Equal(t, "https://demo.services.ai.azure.com/api/projects/p", cfg.Endpoint)
	assert.Equal(t, "agents/diag.json", cfg.Definition)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Empty(t, cfg.AgentName)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("FOUNDRY_ENDPOINT", "https://env.example/api/projects/p")
	t.Setenv("FOUNDRY_AGENT_NAME", "from-env")
	t.Setenv("FOUNDRY_MODEL", "gpt-4o")

	cfg, err := Load(newFlags(t, "--definition", "a.json", "--model", "gpt-4.1"))

	require.NoError(t, err)
	assert.Equal(t, "https://env.example/api/projects/p", cfg.Endpoint)
	assert.Equal(t, "from-env", cfg.AgentName)
	assert.Equal(t, "gpt-4.1", cfg.Model, "flag beats env")
}

func TestValidate_Missing(t *testing.T) {
	cfg, err := Load(newFlags(t, "--definition", "a.json"))
	require.NoError(t, err)

	err = cfg.Validate()

	require.Error(t, err)
	assert.Equal(t, `required flag(s) "endpoint", "model" not set`, err.Error())
}
