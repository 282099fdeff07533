package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/uslanozan/agent-import/models"
)

var (
	ErrDefinitionNotFound  = errors.New("definition file not found")
	ErrNameMissing         = errors.New("agent name missing: supply --agent-name or ensure the JSON includes a 'name' field")
	ErrInvalidInstructions = errors.New("instructions list must contain only strings")
)

// ResolvePath expands a leading ~ and returns the cleaned absolute path.
func ResolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// LoadDefinition reads a JSON object from path. Numbers are kept as
// json.Number so passthrough keys are forwarded exactly as written.
func LoadDefinition(fsys afero.Fs, path string) (models.AgentDefinition, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, path)
		}
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var def models.AgentDefinition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse definition %s: unexpected data after top-level object", path)
	}
	if def == nil {
		return nil, fmt.Errorf("parse definition %s: top-level value must be a JSON object", path)
	}
	return def, nil
}

// Normalize patches def in place so it can be submitted as a create-agent body.
// Without an agentName override the document's name must be a non-empty
// string; a number, bool or object under "name" counts as missing and yields
// ErrNameMissing.
func Normalize(def models.AgentDefinition, agentName, model string) error {
	name := agentName
	if name == "" {
		var ok bool
		if name, ok = def.Name(); !ok {
			return ErrNameMissing
		}
	}

	def[models.FieldName] = name
	def[models.FieldModel] = model

	if lines, ok := def[models.FieldInstructions].([]any); ok {
		parts := make([]string, len(lines))
		for i, line := range lines {
			s, ok := line.(string)
			if !ok {
				return fmt.Errorf("%w: element %d is %T", ErrInvalidInstructions, i, line)
			}
			parts[i] = s
		}
		def[models.FieldInstructions] = strings.Join(parts, "\n")
	}

	// Portal memory settings are not accepted by the create-agent payload yet.
	delete(def, models.FieldMemory)
	return nil
}
