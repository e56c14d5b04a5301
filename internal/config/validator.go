package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

// Validate checks that the selected catalog source has everything it needs
// and that the port is usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf(ErrFmtPortOutOfRange, ErrInvalidConfig, c.Port)
	}

	switch c.CatalogSource {
	case SourceCSV:
		if c.ItemsPath == "" {
			return fmt.Errorf(ErrFmtMissingForSource, ErrInvalidConfig, EnvItemsPath, SourceCSV)
		}
	case SourceJSON:
		if c.CatalogJSONPath == "" {
			return fmt.Errorf(ErrFmtMissingForSource, ErrInvalidConfig, EnvCatalogJSONPath, SourceJSON)
		}
	case SourcePostgres:
		for _, required := range []struct{ name, value string }{
			{EnvDBUser, c.DBUser},
			{EnvDBHost, c.DBHost},
			{EnvDBPort, c.DBPort},
			{EnvDBName, c.DBName},
		} {
			if required.value == "" {
				return fmt.Errorf(ErrFmtMissingForSource, ErrInvalidConfig, required.name, SourcePostgres)
			}
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf(ErrFmtPoolSize, ErrInvalidConfig, c.DBMaxConns)
		}
	default:
		return fmt.Errorf(ErrFmtUnknownSource, ErrInvalidConfig, c.CatalogSource)
	}

	return nil
}

// ValidateWithWarnings validates the configuration and returns warnings
// for non-critical issues (like using example values)
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.CatalogSource == SourcePostgres && c.DBPassword == ExamplePassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}

	if c.CatalogSource == SourceCSV && c.CollectionsPath == "" {
		warnings = append(warnings, WarnMsgNoCollectionsMap)
	}

	return warnings, nil
}
