package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// writeStructured encodes v as JSON or YAML. It returns false for text output
// so the caller can render its own layout.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return true, enc.Encode(v)
	}
	return false, nil
}
