package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["candidates"],
	"properties": {
		"candidates": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title"],
				"properties": {
					"title": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"candidates": [{"title": "Algorithms Part I"}]}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"candidates": [{"url": "https://example.com"}]}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "title")
}

func TestValidateJSONString_WrongRootType(t *testing.T) {
	err := ValidateJSONString(testSchema, `[]`)

	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	assert.Error(t, err)
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	err := ValidateJSON("/nonexistent/schema.json", "/nonexistent/doc.json")
	assert.Error(t, err)
}
