package importer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/uslanozan/agent-import/importer"
	"github.com/uslanozan/agent-import/importer/mocks"
	"github.com/uslanozan/agent-import/models"
)

func newImporter(t *testing.T, files map[string]string) (*importer.Importer, *mocks.MockAgentCreator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	creator := mocks.NewMockAgentCreator(ctrl)

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return importer.New(fs, creator, zerolog.Nop()), creator
}

func TestImport_SubmitsNormalizedBody(t *testing.T) {
	imp, creator := newImporter(t, map[string]string{
		"/agents/diag.json": `{"name": "diag", "instructions": ["step1", "step2"], "memory": {"x": 1}}`,
	})

	want := models.AgentDefinition{
		"name":         "diag",
		"instructions": "step1\nstep2",
		"model":        "gpt-4o-mini",
	}
	creator.EXPECT().
		CreateAgent(gomock.Any(), want).
		Return(models.ImportResult{"id": "asst_1", "name": "diag", "status": "active"}, nil)

	result, err := imp.Import(context.Background(), importer.Params{
		DefinitionPath: "/agents/diag.json",
		Model:          "gpt-4o-mini",
	})

	require.NoError(t, err)
	assert.Equal(t, "asst_1", result.ID())
	assert.Equal(t, "diag", result.Name())
	assert.Equal(t, "active", result.Status())
}

func TestImport_NameOverride(t *testing.T) {
	imp, creator := newImporter(t, map[string]string{
		"/agents/diag.json": `{"name": "diag", "instructions": "hi"}`,
	})

	creator.EXPECT().
		CreateAgent(gomock.Any(), models.AgentDefinition{"name": "renamed", "instructions": "hi", "model": "gpt-4o"}).
		Return(models.ImportResult{"id": "asst_2", "name": "renamed"}, nil)

	result, err := imp.Import(context.Background(), importer.Params{
		DefinitionPath: "/agents/diag.json",
		AgentName:      "renamed",
		Model:          "gpt-4o",
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", result.Name())
	assert.Equal(t, "-", result.Status())
}

func TestImport_LocalErrorsSkipRemoteCall(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: "/agents/nope.json", wantErr: importer.ErrDefinitionNotFound},
		{name: "missing name", path: "/agents/anon.json", wantErr: importer.ErrNameMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT: any CreateAgent call fails the test.
			imp, _ := newImporter(t, map[string]string{
				"/agents/anon.json": `{"instructions": ["a"]}`,
			})

			_, err := imp.Import(context.Background(), importer.Params{DefinitionPath: tt.path, Model: "m"})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestImport_MalformedJSONSkipsRemoteCall(t *testing.T) {
	imp, _ := newImporter(t, map[string]string{"/agents/bad.json": `{"name": "x",}`})

	_, err := imp.Import(context.Background(), importer.Params{DefinitionPath: "/agents/bad.json", Model: "m"})

	require.Error(t, err)
}

func TestImport_ConnectsOnlyForValidDefinition(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/agents/anon.json", []byte(`{"instructions": "x"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/agents/diag.json", []byte(`{"name": "diag"}`), 0o644))

	connects := 0
	connectErr := errors.New("no credential sources")
	imp := importer.NewLazy(fs, func(context.Context) (importer.AgentCreator, error) {
		connects++
		return nil, connectErr
	}, zerolog.Nop())

	_, err := imp.Import(context.Background(), importer.Params{DefinitionPath: "/agents/missing.json", Model: "m"})
	require.ErrorIs(t, err, importer.ErrDefinitionNotFound)

	_, err = imp.Import(context.Background(), importer.Params{DefinitionPath: "/agents/anon.json", Model: "m"})
	require.ErrorIs(t, err, importer.ErrNameMissing)
	assert.Zero(t, connects)

	_, err = imp.Import(context.Background(), importer.Params{DefinitionPath: "/agents/diag.json", Model: "m"})
	require.ErrorIs(t, err, connectErr)
	assert.Equal(t, 1, connects)
}

func TestImport_RemoteErrorPropagates(t *testing.T) {
	imp, creator := newImporter(t, map[string]string{"/agents/diag.json": `{"name": "diag"}`})
	remoteErr := errors.New("quota exceeded")
	creator.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).Return(nil, remoteErr)

	_, err := imp.Import(context.Background(), importer.Params{DefinitionPath: "/agents/diag.json", Model: "m"})

	require.ErrorIs(t, err, remoteErr)
}
