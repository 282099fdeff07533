package models

// Keys of an agent definition that the importer reads or rewrites.
// Every other key is forwarded to the remote API untouched.
const (
	FieldName         = "name"
	FieldModel        = "model"
	FieldInstructions = "instructions"
	FieldMemory       = "memory"
)

// AgentDefinition is the JSON object read from a definition file.
type AgentDefinition map[string]any

// Name returns the definition's name when it is a non-empty string.
func (d AgentDefinition) Name() (string, bool) {
	name, ok := d[FieldName].(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
