// Package validation checks JSON documents against the schemas embedded in
// the binary before they are decoded into domain types.
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	fsys fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator backed by the embedded schemas
func NewSchemaValidator() SchemaValidator {
	return NewSchemaValidatorFS(embeddedSchemas)
}

// NewSchemaValidatorFS creates a validator reading schemas from fsys
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	return &validator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

var (
	defaultOnce      sync.Once
	defaultValidator SchemaValidator
)

// ValidateSave checks an encoded player save against SchemaSave
func ValidateSave(data []byte) error {
	defaultOnce.Do(func() { defaultValidator = NewSchemaValidator() })
	return defaultValidator.ValidateBytes(data, SchemaSave)
}

// ValidateBytes validates JSON data bytes against the schema at schemaPath.
// Failures wrap ErrSchemaViolation.
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schemaPath, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, errors.Join(ErrSchemaViolation, err))
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema once and caches it
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.fsys, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadSchema, err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseSchema, err)
	}

	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddResource, err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// formatValidationError flattens the cause tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError renders "  - at /inventory/items/0: properties.rarity.enum validation failed"
func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
