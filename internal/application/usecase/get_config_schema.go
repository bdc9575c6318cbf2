package usecase

import (
	"context"
	"strings"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section limits the keys to one section (case-insensitive). Empty means all.
	Section string
	// IncludeJSONSchema also renders the JSON Schema document.
	IncludeJSONSchema bool
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys       []entity.ConfigKeyInfo
	JSONSchema []byte
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()

	if section := strings.TrimSpace(input.Section); section != "" {
		filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
		for _, k := range keys {
			if strings.EqualFold(k.Section, section) {
				filtered = append(filtered, k)
			}
		}
		keys = filtered
	}

	out := &GetConfigSchemaOutput{Keys: keys}
	if input.IncludeJSONSchema {
		doc, err := uc.provider.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.JSONSchema = doc
	}
	return out, nil
}
