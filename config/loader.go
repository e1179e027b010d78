package config

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// LoadAndValidate loads the manifest from fsys and validates it against
// the JSON Schema at schemaPath before unmarshaling.
func LoadAndValidate(fsys afero.Fs, path, schemaPath string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read manifest: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}

	schemaData, err := afero.ReadFile(fsys, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read schema: %w", err)
	}

	schema, err := jsonschema.CompileString(schemaPath, string(schemaData))
	if err != nil {
		return nil, fmt.Errorf("config: failed to compile schema: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config: manifest validation failed: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal into Config struct: %w", err)
	}

	return &config, nil
}
