package schema

import (
	"testing"
)

func TestValidate_DeviceCreateValid(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceCreate, map[string]any{
		"name":     "Desk Lamp",
		"category": "light",
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_DeviceCreateMissingName(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceCreate, map[string]any{
		"category": "light",
	})
	if err == nil {
		t.Error("expected validation error for missing name")
	}
}

func TestValidate_DeviceCreateInvalidCategory(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceCreate, map[string]any{
		"name":     "Toaster",
		"category": "toaster",
	})
	if err == nil {
		t.Error("expected validation error for invalid category")
	}
}

func TestValidate_DeviceCreateUnknownProperty(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceCreate, map[string]any{
		"name":     "Desk Lamp",
		"category": "light",
		"state":    "on",
	})
	if err == nil {
		t.Error("expected validation error for unknown property")
	}
}

func TestValidate_DeviceUpdatePartial(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceUpdate, map[string]any{
		"name": "Renamed Lamp",
	})
	if err != nil {
		t.Errorf("expected valid partial update, got: %v", err)
	}
}

func TestValidate_DeviceUpdateEmpty(t *testing.T) {
	v := NewValidator()

	err := v.Validate(DeviceUpdate, map[string]any{})
	if err == nil {
		t.Error("expected validation error for empty update")
	}
}

func TestValidate_RuleCreateValid(t *testing.T) {
	v := NewValidator()

	err := v.Validate(RuleCreate, map[string]any{
		"name":              "Night mode",
		"trigger_device_id": "dev-1",
		"trigger_condition": "locked",
		"action_device_id":  "dev-2",
		"action_state":      "off",
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidate_RuleCreateMissingAction(t *testing.T) {
	v := NewValidator()

	err := v.Validate(RuleCreate, map[string]any{
		"name":              "Night mode",
		"trigger_device_id": "dev-1",
		"trigger_condition": "locked",
	})
	if err == nil {
		t.Error("expected validation error for missing action fields")
	}
}

func TestValidate_UnknownSchemaName(t *testing.T) {
	v := NewValidator()

	err := v.Validate("nope", map[string]any{})
	if err == nil {
		t.Error("expected error for unknown schema name")
	}
}

func TestValidate_CachesSchema(t *testing.T) {
	v := NewValidator()

	payload := map[string]any{"name": "Desk Lamp", "category": "light"}

	// First call compiles
	if err := v.Validate(DeviceCreate, payload); err != nil {
		t.Fatal(err)
	}

	// Second call should use cache
	if err := v.Validate(DeviceCreate, payload); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}
