package validation

const (
	ErrMsgSchemaViolation = "schema validation failed"
)

const (
	ErrFmtReadData      = "failed to read data file %s: %w"
	ErrFmtLoadSchema    = "failed to load schema %s: %w"
	ErrFmtParseData     = "failed to parse JSON data: %w"
	ErrFmtReadSchema    = "failed to read schema file: %w"
	ErrFmtParseSchema   = "failed to parse schema JSON: %w"
	ErrFmtAddSchema     = "failed to add schema resource: %w"
	ErrFmtCompileSchema = "failed to compile schema: %w"
	ErrFmtGetwd         = "failed to get current directory: %w"
	ErrFmtFileNotFound  = "file not found: %s (searched from %s)"
)

const (
	RootLocation          = "(root)"
	FmtViolation          = "  - at %s: %s validation failed"
	FmtViolationNoKeyword = "  - at %s: validation failed"
)
