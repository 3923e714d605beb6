// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/typegen/internal/errors"
)

// Object is a decoded mapping that keeps its keys in document order.
// Values are Object, []any, string, json.Number, bool or nil.
type Object []Pair

// Pair is one key/value entry of an Object.
type Pair struct {
	Key   string
	Value any
}

// Get returns the value for key.
func (o Object) Get(key string) (any, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// DecodeJSON decodes a JSON document whose top level is an object,
// preserving key order at every level.
func DecodeJSON(data []byte) (Object, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := v.(Object)
	if !ok {
		return nil, errors.Newf("top-level value must be an object, got %T", v)
	}
	return obj, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object{}
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, errors.Newf("object key must be a string, got %v", keyToken)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, Pair{Key: key, Value: val})
			}
			// closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			// closing bracket
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, errors.Newf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

// DecodeYAML decodes a YAML document whose top level is a mapping,
// preserving key order at every level.
func DecodeYAML(data []byte) (Object, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return Object{}, nil
	}

	v, err := fromYAMLNode(&root)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, errors.Newf("top-level value must be a mapping, got %T", v)
	}
	return obj, nil
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Object{}, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := make(Object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, errors.Newf("line %d: mapping key must be a scalar", k.Line)
			}
			val, err := fromYAMLNode(v)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Pair{Key: k.Value, Value: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		case "!!int":
			return yamlInt(n)
		case "!!float":
			return yamlFloat(n)
		default:
			return n.Value, nil
		}
	default:
		return nil, errors.Newf("line %d: unsupported YAML node", n.Line)
	}
}

// yamlInt re-spells an integer scalar in decimal, so octal, hex and
// underscore-separated forms reach the output as plain literals.
func yamlInt(n *yaml.Node) (json.Number, error) {
	var i int64
	if err := n.Decode(&i); err == nil {
		return json.Number(strconv.FormatInt(i, 10)), nil
	}
	var u uint64
	if err := n.Decode(&u); err != nil {
		return "", errors.SchemaInvariantf("line %d: integer %s out of range", n.Line, n.Value)
	}
	return json.Number(strconv.FormatUint(u, 10)), nil
}

// yamlFloat re-spells a float scalar; infinities and NaN have no literal form.
func yamlFloat(n *yaml.Node) (json.Number, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return "", errors.Wrapf(err, "line %d", n.Line)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", errors.SchemaInvariantf("line %d: non-finite number %s", n.Line, n.Value)
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return json.Number(text), nil
}
