package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/application/port/mocks"
	"github.com/bnema/onramp/internal/application/usecase"
	"github.com/bnema/onramp/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "api.max_retries",
			Type:        "int",
			Default:     "3",
			Description: "Attempts per request before giving up",
			Range:       "1-10",
			Section:     "API",
		},
		{
			Key:         "scheduler.policy",
			Type:        "string",
			Default:     "stagger",
			Description: "How home-screen requests are spaced",
			Values:      []string{"stagger", "serial"},
			Section:     "Scheduler",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, "api.max_retries", result.Keys[0].Key)
		assert.Nil(t, result.JSONSchema)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by section case-insensitively", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "scheduler"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		key := result.Keys[0]
		assert.Equal(t, "scheduler.policy", key.Key)
		assert.Equal(t, []string{"stagger", "serial"}, key.Values)
		assert.Empty(t, key.Range)
	})

	t.Run("unknown section yields no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "webkit"})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})

	t.Run("includes JSON schema when asked", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())
		mockProvider.EXPECT().JSONSchema().Return([]byte(`{"title":"onramp configuration"}`), nil)

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{IncludeJSONSchema: true})

		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"onramp configuration"}`, string(result.JSONSchema))
	})

	t.Run("propagates JSON schema errors", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(nil)
		mockProvider.EXPECT().JSONSchema().Return(nil, errors.New("reflect failed"))

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		_, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{IncludeJSONSchema: true})
		require.Error(t, err)
	})
}
