package importer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/uslanozan/agent-import/models"
)

//go:generate mockgen -source=importer.go -destination=mocks/mock_agent_creator.go -package=mocks

// AgentCreator submits a normalized definition to the agent-management API.
type AgentCreator interface {
	CreateAgent(ctx context.Context, body models.AgentDefinition) (models.ImportResult, error)
}

// Params are the per-run inputs. Model always overwrites the document's model.
type Params struct {
	DefinitionPath string
	AgentName      string
	Model          string
}

// CreatorFunc builds the AgentCreator once the definition has been checked
// locally, so credential discovery never runs for a bad input file.
type CreatorFunc func(ctx context.Context) (AgentCreator, error)

// Importer loads a definition from disk, normalizes it and hands it to the
// remote API. It keeps no state between runs.
type Importer struct {
	FS      afero.Fs
	Connect CreatorFunc
	Log     zerolog.Logger
}

func New(fsys afero.Fs, creator AgentCreator, log zerolog.Logger) *Importer {
	return NewLazy(fsys, func(context.Context) (AgentCreator, error) {
		return creator, nil
	}, log)
}

// NewLazy defers building the creator until Import has a valid body.
func NewLazy(fsys afero.Fs, connect CreatorFunc, log zerolog.Logger) *Importer {
	return &Importer{
		FS:      fsys,
		Connect: connect,
		Log:     log,
	}
}

// Import runs one import. Local input errors are returned before the remote
// API is contacted.
func (i *Importer) Import(ctx context.Context, p Params) (models.ImportResult, error) {
	path, err := ResolvePath(p.DefinitionPath)
	if err != nil {
		return nil, err
	}
	i.Log.Debug().Str("path", path).Msg("loading agent definition")

	def, err := LoadDefinition(i.FS, path)
	if err != nil {
		return nil, err
	}

	if err := Normalize(def, p.AgentName, p.Model); err != nil {
		return nil, err
	}
	i.Log.Info().
		Interface("name", def[models.FieldName]).
		Str("model", p.Model).
		Int("keys", len(def)).
		Msg("submitting agent definition")

	creator, err := i.Connect(ctx)
	if err != nil {
		return nil, err
	}
	result, err := creator.CreateAgent(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	i.Log.Info().Str("id", result.ID()).Msg("agent created")
	return result, nil
}
