package validation

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0},
		"status": {"enum": ["active", "inactive"]}
	},
	"required": ["name"]
}`

func testValidator() SchemaValidator {
	return NewSchemaValidatorFS(fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(personSchema)},
		"broken.schema.json": &fstest.MapFile{Data: []byte(`{"type": `)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := testValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid enum value", data: `{"name": "John", "status": "gone"}`, wantError: true, errorMsg: "/status"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "person.schema.json")

			if !tt.wantError {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("Expected ErrSchemaViolation, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
			}
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	validator := testValidator()

	tests := []struct {
		name     string
		schema   string
		errorMsg string
	}{
		{name: "missing schema", schema: "nonexistent.schema.json", errorMsg: ErrMsgReadSchema},
		{name: "malformed schema", schema: "broken.schema.json", errorMsg: ErrMsgParseSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(`{}`), tt.schema)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !strings.Contains(err.Error(), ErrMsgLoadSchema) || !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected %q load error, got: %v", tt.errorMsg, err)
			}
			if errors.Is(err, ErrSchemaViolation) {
				t.Errorf("Schema problems must not read as data violations: %v", err)
			}
		})
	}
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := testValidator().(*validator)

	data := []byte(`{"name": "value"}`)
	if err := v.ValidateBytes(data, "person.schema.json"); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema, got %d", len(v.schemas))
	}

	if err := v.ValidateBytes(data, "person.schema.json"); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema after second validation, got %d", len(v.schemas))
	}
}

const validSave = `{
	"schema_version": "1",
	"player_id": "p1",
	"zone": 3,
	"gold": 120,
	"materials": {"scrap": 4, "essence": 1},
	"inventory": {
		"catalog_version": "1",
		"items": [
			{"instance_id": "a", "name": "Iron Blade", "type": "mainHand", "rarity": "Rare", "stats": {"atk": 5}, "zone": 3, "upgrades": 0}
		]
	},
	"party": [
		{"id": "warrior", "name": "Warrior", "equipment": {
			"armor": {"instance_id": "b", "name": "Plate", "type": "armor", "rarity": "Common", "stats": {"def": 2, "hp": 10}},
			"trinket": null
		}}
	],
	"saved_at": "2026-01-02T03:04:05Z"
}`

func TestValidateSave(t *testing.T) {
	if err := ValidateSave([]byte(validSave)); err != nil {
		t.Fatalf("Expected valid save, got: %v", err)
	}

	tests := []struct {
		name     string
		from     string
		to       string
		errorMsg string
	}{
		{name: "negative gold", from: `"gold": 120`, to: `"gold": -1`, errorMsg: "/gold"},
		{name: "unknown rarity", from: `"rarity": "Rare"`, to: `"rarity": "Mythic"`, errorMsg: "/inventory/items/0/rarity"},
		{name: "unknown slot", from: `"type": "mainHand"`, to: `"type": "boots"`, errorMsg: "/inventory/items/0/type"},
		{name: "upgrades past the cap", from: `"upgrades": 0`, to: `"upgrades": 9`, errorMsg: "/inventory/items/0/upgrades"},
		{name: "unknown stat", from: `{"atk": 5}`, to: `{"crit": 5}`, errorMsg: "/inventory/items/0/stats"},
		{name: "negative material", from: `"scrap": 4`, to: `"scrap": -4`, errorMsg: "/materials/scrap"},
		{name: "unknown equipment slot", from: `"trinket": null`, to: `"boots": null`, errorMsg: "/party/0/equipment"},
		{name: "missing player", from: `"player_id": "p1",`, to: ``, errorMsg: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(validSave, tt.from, tt.to, 1)
			if doc == validSave {
				t.Fatalf("fixture did not contain %q", tt.from)
			}
			err := ValidateSave([]byte(doc))
			if !errors.Is(err, ErrSchemaViolation) {
				t.Fatalf("Expected ErrSchemaViolation, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
			}
		})
	}
}
