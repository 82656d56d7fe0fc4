package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-scribe/richtext"
)

var ErrDocumentInvalid = errors.New("validation: document payload invalid")

// documentSchema constrains the serialized block tree before it reaches the
// store: known block kinds only, heading levels 1-6, spans shaped as the
// inline tokenizer emits them.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "RichTextDocument",
  "type": "object",
  "required": ["blocks"],
  "additionalProperties": false,
  "properties": {
    "blocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind"],
        "additionalProperties": false,
        "properties": {
          "kind": {
            "type": "string",
            "enum": ["heading", "paragraph", "list", "divider"]
          },
          "level": {
            "type": "integer",
            "minimum": 1,
            "maximum": 6
          },
          "text": {
            "type": "string"
          },
          "spans": {
            "$ref": "#/$defs/spans"
          },
          "ordered": {
            "type": "boolean"
          },
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["spans"],
              "additionalProperties": false,
              "properties": {
                "spans": {
                  "$ref": "#/$defs/spans"
                }
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "spans": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text"],
        "additionalProperties": false,
        "properties": {
          "text": { "type": "string" },
          "bold": { "type": "boolean" },
          "italic": { "type": "boolean" },
          "href": { "type": "string" }
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("document.json", strings.NewReader(documentSchema)); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("document.json")
	})
	return compiled, compileErr
}

// ValidateDocument checks the serialized form of a document against the
// rich-text schema. The document is round-tripped through JSON so the
// validation sees exactly what the store will.
func ValidateDocument(doc *richtext.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrDocumentInvalid)
	}

	compiledSchema, err := schema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	if err := compiledSchema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s", ErrDocumentInvalid, firstIssue(err))
	}
	return nil
}

func firstIssue(err error) string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		leaf := validationErr
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		location := strings.TrimSpace(leaf.InstanceLocation)
		if location == "" {
			location = "#"
		}
		return fmt.Sprintf("%s: %s", location, strings.TrimSpace(leaf.Message))
	}
	return err.Error()
}
