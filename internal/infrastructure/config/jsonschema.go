package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/listnav/config.schema.json"
	schema.Title = "listnav configuration"
	schema.Description = "Interaction settings for listbox, tabs and combobox patterns"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir.
func WriteSchemaFile(dir string) error {
	data, err := Schema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, schemaName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
