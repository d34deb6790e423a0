package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// localizedSchema describes a LocalizedText value: at least an English
// entry, all values strings.
var localizedSchema = map[string]any{
	"type":     "object",
	"required": []any{"en"},
	"additionalProperties": map[string]any{
		"type": "string",
	},
}

var pointSchema = map[string]any{
	"type":     "object",
	"required": []any{"x", "y"},
	"properties": map[string]any{
		"x": map[string]any{"type": "number"},
		"y": map[string]any{"type": "number"},
	},
}

var regionSchema = map[string]any{
	"type":     "object",
	"required": []any{"name", "points"},
	"properties": map[string]any{
		"name": map[string]any{"type": "string", "minLength": 1},
		"points": map[string]any{
			"type":     "array",
			"minItems": 3,
			"items":    pointSchema,
		},
	},
}

var pairSchema = map[string]any{
	"type":     "object",
	"required": []any{"a", "b"},
	"properties": map[string]any{
		"a": localizedSchema,
		"b": localizedSchema,
	},
}

// entrySchema builds the schema for one collection entry: id + topic plus
// the type-specific required fields.
func entrySchema(required []string, properties map[string]any) map[string]any {
	req := []any{"id", "topic"}
	for _, r := range required {
		req = append(req, r)
	}
	props := map[string]any{
		"id":    map[string]any{"type": "integer", "minimum": 1},
		"topic": map[string]any{"type": "string", "minLength": 1},
	}
	for k, v := range properties {
		props[k] = v
	}
	return map[string]any{
		"type":       "object",
		"required":   req,
		"properties": props,
	}
}

// collectionSchema wraps an entry schema in the collection envelope
// {"<key>": [entries...]}.
func collectionSchema(key string, entry map[string]any) map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{key},
		"properties": map[string]any{
			key: map[string]any{
				"type":  "array",
				"items": entry,
			},
		},
	}
}

// collectionSchemas maps each exercise type to the schema its embedded
// collection must satisfy.
var collectionSchemas = map[Type]map[string]any{
	TypeQuestion: collectionSchema("questions", entrySchema(
		[]string{"prompt", "options", "correct_option"},
		map[string]any{
			"prompt": localizedSchema,
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    localizedSchema,
			},
			"correct_option": map[string]any{"type": "integer", "minimum": 1},
		},
	)),
	TypeCloze: collectionSchema("clozes", entrySchema(
		[]string{"prompt", "options", "correct_option"},
		map[string]any{
			"prompt": localizedSchema,
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    localizedSchema,
			},
			"correct_option": map[string]any{"type": "integer", "minimum": 1},
		},
	)),
	TypeTrueFalse: collectionSchema("truefalse", entrySchema(
		[]string{"statement", "answer"},
		map[string]any{
			"statement": localizedSchema,
			"answer":    map[string]any{"type": "boolean"},
		},
	)),
	TypeMatching: collectionSchema("matching", entrySchema(
		[]string{"mode", "pairs"},
		map[string]any{
			"prompt": localizedSchema,
			"mode":   map[string]any{"enum": []any{"evaluate", "repel"}},
			"pairs": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    pairSchema,
			},
		},
	)),
	TypeOrdering: collectionSchema("ordering", entrySchema(
		[]string{"items"},
		map[string]any{
			"prompt": localizedSchema,
			"items": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    localizedSchema,
			},
		},
	)),
	TypeLabeling: collectionSchema("labelings", entrySchema(
		[]string{"regions", "labels"},
		map[string]any{
			"prompt": localizedSchema,
			"regions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    regionSchema,
			},
			"labels": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"text", "target"},
					"properties": map[string]any{
						"text":   localizedSchema,
						"target": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	)),
	TypeHotspot: collectionSchema("hotspots", entrySchema(
		[]string{"regions", "target"},
		map[string]any{
			"prompt": localizedSchema,
			"regions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    regionSchema,
			},
			"target": map[string]any{"type": "string", "minLength": 1},
		},
	)),
	TypePuzzle: collectionSchema("puzzles", entrySchema(
		[]string{"pieces"},
		map[string]any{
			"prompt":         localizedSchema,
			"snap_threshold": map[string]any{"type": "number", "exclusiveMinimum": 0},
			"pieces": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name", "anchor"},
					"properties": map[string]any{
						"name":   map[string]any{"type": "string", "minLength": 1},
						"anchor": pointSchema,
					},
				},
			},
		},
	)),
	TypeMemory: collectionSchema("memory", entrySchema(
		[]string{"pairs"},
		map[string]any{
			"prompt": localizedSchema,
			"pairs": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    pairSchema,
			},
		},
	)),
	TypeSlider: collectionSchema("sliders", entrySchema(
		[]string{"min", "max", "correct", "tolerance"},
		map[string]any{
			"prompt":    localizedSchema,
			"min":       map[string]any{"type": "number"},
			"max":       map[string]any{"type": "number"},
			"step":      map[string]any{"type": "number", "exclusiveMinimum": 0},
			"unit":      map[string]any{"type": "string"},
			"correct":   map[string]any{"type": "number"},
			"tolerance": map[string]any{"type": "number", "minimum": 0},
		},
	)),
}

// validateCollection checks raw collection JSON against the schema for its
// exercise type.
func validateCollection(t Type, raw []byte) error {
	def, ok := collectionSchemas[t]
	if !ok {
		return fmt.Errorf("no schema for type %q", t)
	}

	compiled, err := compileSchema(string(t), def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", t, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compileSchema compiles a schema definition map into a validator.
func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value. Round-trip the
	// definition to normalize Go literals into that form.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	url := "organiq://content/" + name + ".schema.json"
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}
