package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema renders the JSON Schema of Config, used to validate YAML files
// in editors.
func JSONSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            false,
		ExpandedStruct:            true,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "Hotel Booking Client Configuration"
	schema.Description = "Configuration for the hotel booking client and CLI"

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
