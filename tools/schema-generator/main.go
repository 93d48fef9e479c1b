package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/agexport/config"
	"github.com/invopop/jsonschema"
)

func main() {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "Agent Transcript Export (agexport) Configuration"
	schema.Description = "Schema for the 'agexport' extension in grove.yml or a standalone --config-file file."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile("agexport.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated agexport schema at agexport.schema.json")
}
