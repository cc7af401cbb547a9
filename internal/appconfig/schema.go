// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the shape of config/config.json. Semantic checks
// beyond shape (non-empty strings, credential presence) live in Validate
// and ResolveCredential.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "models": {
      "type": "array",
      "items": { "type": "string" },
      "minItems": 1
    },
    "prompts": {
      "type": "array",
      "items": { "type": "string" },
      "minItems": 1
    },
    "systemPrompt":    { "type": "string" },
    "turnGapSeconds":  { "type": "number", "minimum": 0 },
    "modelGapSeconds": { "type": "number", "minimum": 0 },
    "maxOutputTokens": { "type": "integer", "minimum": 1 },
    "temperature":     { "type": "number", "minimum": 0, "maximum": 2 },
    "reasoningEffort": { "type": "string", "enum": ["", "low", "medium", "high"] },
    "timeout":         { "type": "integer", "minimum": 1 },
    "baseUrl":         { "type": "string" },
    "resultsDir":      { "type": "string" },
    "logFile":         { "type": "string" },
    "debug":           { "type": "boolean" }
  },
  "required": ["models", "prompts"],
  "additionalProperties": false
}`

// ValidateDocument checks a raw configuration document against the embedded
// JSON schema and reports every violation at once.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("could not validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("config is invalid: %s", strings.Join(problems, "; "))
}
