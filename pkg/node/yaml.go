package node

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document into a value tree. Mapping key order is
// preserved. Only string-keyed mappings are supported, matching the JSON data
// model the card format is defined over.
func DecodeYAML(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("node: decode yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	v, err := fromYAMLNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("node: decode yaml: %w", err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		arr := Array()
		for _, child := range n.Content {
			item, err := fromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			arr.items = append(arr.items, item)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("mapping key at line %d is not a scalar", keyNode.Line)
			}
			val, err := fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.fields = append(obj.fields, Field{Key: keyNode.Value, Value: val})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q at line %d", n.Value, n.Line)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		if _, err := strconv.ParseFloat(n.Value, 64); err != nil {
			return nil, fmt.Errorf("invalid number %q at line %d", n.Value, n.Line)
		}
		return Number(json.Number(n.Value)), nil
	default:
		return String(n.Value), nil
	}
}
