package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
	"github.com/osse101/TradeUp_Go/internal/validation"
)

// File is the on-disk shape of catalog.json
type File struct {
	Version     string          `json:"version"`
	Description string          `json:"description,omitempty"`
	Items       []domain.Record `json:"items"`
}

// JSONSource reads a catalog.json document after validating it against the catalog schema.
type JSONSource struct {
	Path string

	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewJSONSource creates a JSON source for path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{
		Path:            path,
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      CatalogSchemaPath,
	}
}

// Records validates and decodes the file.
func (s *JSONSource) Records(ctx context.Context) ([]domain.Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtOpenFile, s.Path, err)
	}

	if err := s.schemaValidator.ValidateBytes(data, s.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchema, ErrInvalidCatalog, s.Path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrFmtDecode, ErrInvalidCatalog, s.Path, err)
	}

	for i := range file.Items {
		if file.Items[i].Crates == nil {
			file.Items[i].Crates = []string{}
		}
	}

	logger.FromContext(ctx).Info(LogMsgLoadedJSON,
		LogFieldPath, s.Path,
		LogFieldVersion, file.Version,
		LogFieldRecords, len(file.Items))
	return file.Items, nil
}
