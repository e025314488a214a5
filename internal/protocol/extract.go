package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingField reports a matched object whose content lacks a field the
// extractor needs or holds it in an unusable form.
var ErrMissingField = errors.New("missing position field")

// lookupPath walks a dotted path through nested content fields and renders
// the leaf as a string.
func lookupPath(fields map[string]interface{}, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrMissingField)
	}

	current := interface{}(fields)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingField, path)
		}
		current, ok = node[segment]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingField, path)
		}
	}
	return renderValue(current, path)
}

func renderValue(value interface{}, path string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		// JSON numbers decode as float64; integral values render without
		// a point.
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %s has unsupported type %T", ErrMissingField, path, value)
	}
}
