package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaViolation is matched by errors.Is for any document that fails its schema.
var ErrSchemaViolation = errors.New(ErrMsgSchemaViolation)

// ViolationError lists every schema violation found in a document.
type ViolationError struct {
	Violations []string
}

func (e *ViolationError) Error() string {
	return ErrMsgSchemaViolation + ":\n" + strings.Join(e.Violations, "\n")
}

// Is lets errors.Is(err, ErrSchemaViolation) match.
func (e *ViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// SchemaValidator validates JSON documents against JSON schemas.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a schema validator that compiles each schema once.
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema file.
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf(ErrFmtReadData, dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates JSON data against a schema file.
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf(ErrFmtLoadSchema, schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrFmtParseData, err)
	}

	if err := schema.Validate(doc); err != nil {
		return toViolationError(err)
	}
	return nil
}

func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	resolvedPath, err := ResolvePath(schemaPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadSchema, err)
	}

	var schemaJSON any
	if err := json.Unmarshal(raw, &schemaJSON); err != nil {
		return nil, fmt.Errorf(ErrFmtParseSchema, err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaJSON); err != nil {
		return nil, fmt.Errorf(ErrFmtAddSchema, err)
	}

	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtCompileSchema, err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

func toViolationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	out := &ViolationError{}
	collectViolations(verr, &out.Violations)
	return out
}

func collectViolations(err *jsonschema.ValidationError, out *[]string) {
	// Leaf errors carry the concrete failure; parents only repeat the location
	if len(err.Causes) == 0 {
		*out = append(*out, formatViolation(err))
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, out)
	}
}

func formatViolation(err *jsonschema.ValidationError) string {
	location := RootLocation
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keyword := ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keyword == "" {
		return fmt.Sprintf(FmtViolationNoKeyword, location)
	}
	return fmt.Sprintf(FmtViolation, location, keyword)
}

// ResolvePath resolves a relative path against the working directory or any
// parent up to the module root, so binaries and tests find files under configs/.
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(ErrFmtGetwd, err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf(ErrFmtFileNotFound, path, cwd)
}
