package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/uslanozan/agent-import/config"
	"github.com/uslanozan/agent-import/foundry"
	"github.com/uslanozan/agent-import/importer"
	"github.com/uslanozan/agent-import/logger"
	"github.com/uslanozan/agent-import/models"
)

type creatorFactory func(ctx context.Context, cfg *config.ImportConfig, log zerolog.Logger) (importer.AgentCreator, error)

// app carries what a run needs from the outside world, so tests can swap
// the filesystem and the remote API.
type app struct {
	fs         afero.Fs
	newCreator creatorFactory
}

func defaultApp() *app {
	return &app{
		fs:         afero.NewOsFs(),
		newCreator: newFoundryCreator,
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent-import --endpoint <url> --definition <path> --model <deployment> [--agent-name <name>]",
		Short: "Import an Azure AI Foundry agent from a JSON definition.",
		Long: `Reads an agent definition JSON file, sets its name and model, joins list
instructions into one string, drops the unsupported "memory" field and creates
the agent in the given Foundry project.

Authentication uses DefaultAzureCredential: run "az login" or provide
AZURE_* environment variables. Flags can also be set as FOUNDRY_<FLAG>,
e.g. FOUNDRY_ENDPOINT.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String(config.KeyEndpoint, "", "Project endpoint (from the Azure AI Foundry portal) [required]")
	flags.String(config.KeyDefinition, "", "Path to the agent JSON definition [required]")
	flags.String(config.KeyModel, "", "Model deployment name, e.g. gpt-4o-mini [required]")
	flags.String(config.KeyAgentName, "", "Optional override for the agent name")
	flags.String(config.KeyAPIVersion, foundry.DefaultAPIVersion, "Agents API version")
	flags.String(config.KeyScope, foundry.DefaultScope, "Token scope requested from the credential")
	flags.String(config.KeyLogLevel, "warn", "Log level: trace, debug, info, warn, error, off")
	flags.String(config.KeyLogFormat, "console", "Log format: console or json")
	flags.String(config.KeyLogFile, "", "Also write logs to this file (rotated)")
	flags.BoolP(config.KeyVerbose, "v", false, "Shorthand for --log-level debug")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	connect := func(ctx context.Context) (importer.AgentCreator, error) {
		return a.newCreator(ctx, cfg, log)
	}
	result, err := importer.NewLazy(a.fs, connect, log).Import(cmd.Context(), importer.Params{
		DefinitionPath: cfg.Definition,
		AgentName:      cfg.AgentName,
		Model:          cfg.Model,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result models.ImportResult) {
	fmt.Fprintln(w, "✅ Agent imported:")
	fmt.Fprintf(w, "  Name: %s\n", result.Name())
	fmt.Fprintf(w, "  Version ID: %s\n", result.ID())
	fmt.Fprintf(w, "  Status: %s\n", result.Status())
}

func newFoundryCreator(ctx context.Context, cfg *config.ImportConfig, log zerolog.Logger) (importer.AgentCreator, error) {
	cred, err := foundry.DefaultCredential()
	if err != nil {
		return nil, fmt.Errorf("load azure credential: %w", err)
	}

	var scopes []string
	if cfg.Scope != "" {
		scopes = append(scopes, cfg.Scope)
	}
	client, err := foundry.NewClient(ctx, cfg.Endpoint, foundry.NewTokenSource(ctx, cred, scopes...),
		foundry.WithAPIVersion(cfg.APIVersion),
		foundry.WithLogger(log.With().Str("component", "foundry").Logger()),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
