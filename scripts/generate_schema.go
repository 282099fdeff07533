// scripts/generate_schema.go

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/uslanozan/agent-import/models"
)

// Writes the agent record schema the importer checks create-agent responses
// against, so it can be reviewed or shared with other tooling.
func main() {
	data, err := json.MarshalIndent(models.RecordSchema(), "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}

	outputFile := filepath.Join("schemas", "agent_record.json")
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		log.Fatalf("create schemas dir: %v", err)
	}
	if err := os.WriteFile(outputFile, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("write schema: %v", err)
	}

	absPath, _ := filepath.Abs(outputFile)
	fmt.Println("✅ Schema written:", absPath)
}
