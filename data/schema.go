package data

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tableFS embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	ErrSchema    = errors.New("table does not match schema")
	ErrDuplicate = errors.New("duplicate table row")
	ErrRow       = errors.New("invalid table row")
)

const (
	weaponSchema = "schemas/weapons.schema.json"
	raritySchema = "schemas/rarity.schema.json"
)

func compileSchema(name string) (*jsonschema.Schema, error) {
	text, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	s, err := jsonschema.CompileString(name, string(text))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return s, nil
}

// validateYAML checks a YAML document against a JSON schema
// The document goes through JSON so the validator sees plain JSON values
func validateYAML(raw []byte, schemaName, label string) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: convert to json: %w", label, err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	schema, err := compileSchema(schemaName)
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%s: %w: %v", label, ErrSchema, err)
	}
	return nil
}
