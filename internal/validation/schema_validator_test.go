package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string"},
			"rarity": {"type": "string", "enum": ["Restricted", "Classified", "Covert"]},
			"min_float": {"type": "number", "minimum": 0, "maximum": 1}
		},
		"required": ["id", "name"]
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "records.schema.json", recordSchema)

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{name: "valid", data: `[{"id": "1", "name": "AK-47 | Redline", "rarity": "Classified", "min_float": 0.1}]`},
		{name: "empty array", data: `[]`},
		{name: "missing required field", data: `[{"id": "1"}]`, wantErr: true, errorMsg: "required"},
		{name: "wrong type", data: `[{"id": 1, "name": "x"}]`, wantErr: true, errorMsg: "/0/id"},
		{name: "enum violation", data: `[{"id": "1", "name": "x", "rarity": "Legendary"}]`, wantErr: true, errorMsg: "enum"},
		{name: "range violation", data: `[{"id": "1", "name": "x", "min_float": 1.5}]`, wantErr: true, errorMsg: "maximum"},
		{name: "invalid JSON", data: `[{"id": }]`, wantErr: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ViolationError(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "records.schema.json", recordSchema)

	err := v.ValidateBytes([]byte(`[{"id": "1"}, {"name": "x"}]`), schemaPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	var verr *ViolationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 2, "both records are reported")
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "records.schema.json", recordSchema)

	t.Run("valid file", func(t *testing.T) {
		dataPath := writeFile(t, dir, "ok.json", `[{"id": "1", "name": "x"}]`)
		assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(dir, "nonexistent.json"), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})

	t.Run("missing schema file", func(t *testing.T) {
		dataPath := writeFile(t, dir, "data.json", `[]`)
		err := v.ValidateFile(dataPath, "nonexistent.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "records.schema.json", recordSchema)

	data := []byte(`[]`)
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_CatalogSchema(t *testing.T) {
	v := NewSchemaValidator()
	const schemaPath = "configs/schemas/catalog.schema.json"

	valid := `{
		"version": "1.0",
		"items": [
			{"id": "1", "name": "AK-47 | Redline", "weapon": "AK-47", "rarity": "Classified",
			 "collection": "The Phoenix Collection", "min_float": 0.1, "max_float": 0.7,
			 "stattrak": false, "crates": ["Operation Phoenix Weapon Case"]}
		]
	}`
	assert.NoError(t, v.ValidateBytes([]byte(valid), schemaPath))

	badRarity := `{"version": "1.0", "items": [{"id": "1", "name": "x", "rarity": "Legendary", "min_float": 0, "max_float": 1}]}`
	assert.ErrorIs(t, v.ValidateBytes([]byte(badRarity), schemaPath), ErrSchemaViolation)
}

func TestResolvePath(t *testing.T) {
	t.Run("absolute", func(t *testing.T) {
		p, err := ResolvePath("/abs/path.json")
		require.NoError(t, err)
		assert.Equal(t, "/abs/path.json", p)
	})

	t.Run("found above working directory", func(t *testing.T) {
		p, err := ResolvePath("configs/schemas/catalog.schema.json")
		require.NoError(t, err)
		assert.FileExists(t, p)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ResolvePath("configs/does-not-exist.json")
		assert.Error(t, err)
	})
}
