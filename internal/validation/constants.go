package validation

import "errors"

// Embedded schema paths
const (
	SchemaSave = "schemas/save.schema.json"
)

// ErrSchemaViolation marks data that does not satisfy its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// Error messages
const (
	ErrMsgLoadSchema    = "failed to load schema"
	ErrMsgReadSchema    = "failed to read schema file"
	ErrMsgParseSchema   = "failed to parse schema JSON"
	ErrMsgAddResource   = "failed to add schema resource"
	ErrMsgCompileSchema = "failed to compile schema"
	ErrMsgParseData     = "failed to parse JSON data"
)
