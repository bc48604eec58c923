package build

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/verdict-go/verdict/node"
)

// Load builds a schema tree from a YAML schema document. Every mapping
// in the document carries a type tag plus the option keys recognized by
// New; objects nest sub-documents under properties, arrays under a
// single items mapping, and combinators under an items sequence:
//
//	type: any_of
//	required: true
//	items:
//	  - type: integer
//	  - type: string
//	    enum: [auto]
func Load(data []byte) (node.Node, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse schema document")
	}
	if raw == nil {
		return nil, errors.New("empty schema document")
	}
	return fromDocument(raw)
}

func fromDocument(raw map[string]any) (node.Node, error) {
	tagValue, ok := raw["type"]
	if !ok {
		return nil, errors.New("schema document missing type tag")
	}
	tag, ok := tagValue.(string)
	if !ok {
		return nil, errors.Newf("type tag must be a string, got %T", tagValue)
	}

	// Structural keys are consumed here; the remainder is the option bag
	// handed to New, which rejects anything unrecognized.
	bag := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == "type" || key == "items" || key == "properties" {
			continue
		}
		bag[key] = value
	}

	switch tag {
	case "object":
		properties, err := propertyNodes(raw["properties"])
		if err != nil {
			return nil, err
		}
		opts, err := decodeOptions(bag)
		if err != nil {
			return nil, errors.Wrapf(err, "type %q", tag)
		}
		return node.Object(properties, opts...), nil

	case "array":
		var children []node.Node
		if rawItems, ok := raw["items"]; ok {
			m, ok := rawItems.(map[string]any)
			if !ok {
				return nil, errors.Newf("array items must be a single schema document, got %T", rawItems)
			}
			item, err := fromDocument(m)
			if err != nil {
				return nil, errors.Wrap(err, "array items")
			}
			children = append(children, item)
		}
		return New(tag, bag, children...)

	case "any_of", "one_of", "all_of":
		children, err := itemNodes(raw["items"])
		if err != nil {
			return nil, errors.Wrapf(err, "%s items", tag)
		}
		return New(tag, bag, children...)

	default:
		if _, ok := raw["items"]; ok {
			return nil, errors.Newf("type %q does not accept items", tag)
		}
		if _, ok := raw["properties"]; ok {
			return nil, errors.Newf("type %q does not accept properties", tag)
		}
		return New(tag, bag)
	}
}

func propertyNodes(raw any) (map[string]node.Node, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Newf("properties must be a mapping, got %T", raw)
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	properties := make(map[string]node.Node, len(m))
	for _, key := range keys {
		doc, ok := m[key].(map[string]any)
		if !ok {
			return nil, errors.Newf("property %q must be a schema document, got %T", key, m[key])
		}
		child, err := fromDocument(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "property %q", key)
		}
		properties[key] = child
	}
	return properties, nil
}

func itemNodes(raw any) ([]node.Node, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.Newf("items must be a sequence of schema documents, got %T", raw)
	}

	items := make([]node.Node, 0, len(list))
	for i, entry := range list {
		doc, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.Newf("item %d must be a schema document, got %T", i, entry)
		}
		child, err := fromDocument(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		items = append(items, child)
	}
	return items, nil
}
