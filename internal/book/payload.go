package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Shape is the top-level structure of a search response.
type Shape int

const (
	ShapeUnrecognized Shape = iota
	ShapeArray
	ShapeObjectWithResults
	ShapeSingleObject
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeObjectWithResults:
		return "object_with_results"
	case ShapeSingleObject:
		return "single_object"
	default:
		return "unrecognized"
	}
}

// Payload is a decoded search response tagged with its shape.
type Payload struct {
	Shape Shape
	Items []any
}

// DecodePayload parses raw JSON and resolves its shape.
// Numbers are kept as json.Number so they stringify without float noise.
func DecodePayload(raw []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Payload{}, fmt.Errorf("%w: trailing data after top-level value", ErrUnexpectedShape)
	}
	return ResolveShape(v), nil
}

// ResolveShape classifies an already decoded JSON value.
func ResolveShape(v any) Payload {
	switch x := v.(type) {
	case []any:
		return Payload{Shape: ShapeArray, Items: x}
	case map[string]any:
		if results, ok := x["results"].([]any); ok {
			return Payload{Shape: ShapeObjectWithResults, Items: results}
		}
		return Payload{Shape: ShapeSingleObject, Items: []any{x}}
	default:
		return Payload{Shape: ShapeUnrecognized}
	}
}
