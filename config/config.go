package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FOUNDRY_ENDPOINT.
const EnvPrefix = "FOUNDRY"

const (
	KeyEndpoint   = "endpoint"
	KeyDefinition = "definition"
	KeyAgentName  = "agent-name"
	KeyModel      = "model"
	KeyAPIVersion = "api-version"
	KeyScope      = "scope"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
	KeyLogFile    = "log-file"
	KeyVerbose    = "verbose"
)

// ImportConfig holds the settings of one run. Values come from flags first,
// then FOUNDRY_* environment variables.
type ImportConfig struct {
	Endpoint   string    `mapstructure:"endpoint"`
	Definition string    `mapstructure:"definition"`
	AgentName  string    `mapstructure:"agent-name"`
	Model      string    `mapstructure:"model"`
	APIVersion string    `mapstructure:"api-version"`
	Scope      string    `mapstructure:"scope"`
	Log        LogConfig `mapstructure:",squash"`
}

type LogConfig struct {
	Level   string `mapstructure:"log-level"`
	Format  string `mapstructure:"log-format"` // "console" or "json"
	File    string `mapstructure:"log-file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load resolves the configuration for flags.
func Load(flags *pflag.FlagSet) (*ImportConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var cfg ImportConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.trim()
	return &cfg, nil
}

func (c *ImportConfig) trim() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.Definition = strings.TrimSpace(c.Definition)
	c.AgentName = strings.TrimSpace(c.AgentName)
	c.Model = strings.TrimSpace(c.Model)
}

// Validate reports every missing required setting at once.
func (c *ImportConfig) Validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, KeyEndpoint)
	}
	if c.Definition == "" {
		missing = append(missing, KeyDefinition)
	}
	if c.Model == "" {
		missing = append(missing, KeyModel)
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf(`required flag(s) "%s" not set`, strings.Join(missing, `", "`))
}
