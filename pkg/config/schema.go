package config

import (
	"fmt"
	"strings"

	"github.com/fulmenhq/docsweep/internal/assets"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema version shipped with this binary
const SchemaVersion = "1.0.0"

// ValidateConfig validates raw .docsweep.yaml content against the embedded schema.
// An empty document is valid and keeps every default.
func ValidateConfig(configData []byte) error {
	schemaLoader, err := getSchemaLoader()
	if err != nil {
		return fmt.Errorf("failed to load schema for version %s: %v", SchemaVersion, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(configData, &doc); err != nil {
		return fmt.Errorf("failed to parse config as YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %v", err)
	}

	if !result.Valid() {
		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

// getSchemaLoader decodes the embedded YAML schema into a loader
func getSchemaLoader() (gojsonschema.JSONLoader, error) {
	raw, err := assets.ConfigSchema()
	if err != nil {
		return nil, err
	}
	var schema interface{}
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("embedded schema is not valid YAML: %w", err)
	}
	return gojsonschema.NewGoLoader(schema), nil
}
