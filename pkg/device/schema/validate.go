package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Request schema names.
const (
	DeviceCreate = "device_create"
	DeviceUpdate = "device_update"
	RuleCreate   = "rule_create"
)

const categoryEnum = `["light", "thermostat", "lock", "speaker", "fan", "blinds", "camera", "outlet"]`

// documents holds the JSON Schema for each named request payload.
var documents = map[string]string{
	DeviceCreate: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1, "maxLength": 80},
			"category": {"type": "string", "enum": ` + categoryEnum + `}
		},
		"required": ["name", "category"],
		"additionalProperties": false
	}`,
	DeviceUpdate: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1, "maxLength": 80},
			"category": {"type": "string", "enum": ` + categoryEnum + `}
		},
		"minProperties": 1,
		"additionalProperties": false
	}`,
	RuleCreate: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1, "maxLength": 80},
			"trigger_device_id": {"type": "string", "minLength": 1},
			"trigger_condition": {"type": "string", "minLength": 1, "maxLength": 100},
			"action_device_id": {"type": "string", "minLength": 1},
			"action_state": {"type": "string", "minLength": 1, "maxLength": 50}
		},
		"required": ["name", "trigger_device_id", "trigger_condition", "action_device_id", "action_state"],
		"additionalProperties": false
	}`,
}

// Validator validates request payloads against named JSON Schema
// documents. Compiled schemas are cached by name.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a new Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// Validate validates payload against the named schema.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) Validate(name string, payload map[string]any) error {
	compiled, err := v.compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema %q: %w", name, err)
	}

	return compiled.Validate(payload)
}

func (v *Validator) compile(name string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	if s, ok := v.cache[name]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := v.cache[name]; ok {
		return s, nil
	}

	doc, ok := documents[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	var schemaMap any
	if err := json.Unmarshal([]byte(doc), &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name+".json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[name] = compiled
	return compiled, nil
}
