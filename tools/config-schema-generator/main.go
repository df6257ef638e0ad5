package main

import (
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/agentschema/config"
	"github.com/grovetools/agentschema/logging"
)

// Writes the JSON Schema for agentschema.yml, for editor completion.
//
//	go run ./tools/config-schema-generator [output-path]
func main() {
	outputPath := "agentschema.schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema := config.GenerateSchema(map[string]*jsonschema.Schema{
		"logging": logging.ConfigSchema(),
	})

	data, err := config.MarshalSchema(schema)
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated config schema at %s", outputPath)
}
