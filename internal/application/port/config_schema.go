package port

import "github.com/bnema/onramp/internal/domain/entity"

// ConfigSchemaProvider documents the configuration keys.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo

	// JSONSchema returns the configuration as a JSON Schema document.
	JSONSchema() ([]byte, error)
}
