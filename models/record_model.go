package models

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// ImportResult is the raw create-agent response. Only a few fields are read
// from it; the rest is kept as returned.
type ImportResult map[string]any

func (r ImportResult) Name() string   { return r.field("name") }
func (r ImportResult) ID() string     { return r.field("id") }
func (r ImportResult) Status() string { return r.field("status") }

func (r ImportResult) field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return "-"
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprint(v)
}

// AgentRecord is the documented shape of a created agent. It is only used to
// derive the response schema; responses themselves stay in ImportResult.
type AgentRecord struct {
	ID           string `json:"id" jsonschema:"minLength=1"`
	Name         string `json:"name"`
	Object       string `json:"object,omitempty"`
	Model        string `json:"model,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	CreatedAt    int64  `json:"created_at,omitempty"`
	Status       string `json:"status,omitempty"`
}

// RecordSchema reflects AgentRecord into a self-contained JSON schema.
// Unknown response fields are allowed.
func RecordSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		Anonymous:                 true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&AgentRecord{})
	// gojsonschema only understands drafts up to 7; drop the 2020-12 marker.
	schema.Version = ""
	return schema
}
