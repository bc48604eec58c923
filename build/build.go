package build

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/verdict-go/verdict/node"
)

// Sentinel errors for schema-definition failures. All of them surface at
// construction time; none of them are ever collected into a validation
// result.
var (
	// ErrUnknownType indicates a type tag with no registered constructor.
	ErrUnknownType = errors.New("unknown schema type tag")

	// ErrUnknownOption indicates a configuration bag carrying keys the
	// boundary does not recognize.
	ErrUnknownOption = errors.New("unrecognized schema option")

	// ErrBadOption indicates a recognized option with a malformed value.
	ErrBadOption = errors.New("malformed schema option")
)

// constructor builds a node from decoded options and child nodes.
type constructor func(opts []node.Option, children []node.Node) (node.Node, error)

// registry maps authoring-boundary type tags to constructors. The core
// variant set stays closed; the string lookup exists only at this
// boundary.
var registry = map[string]constructor{
	"string":  leaf(func(o ...node.Option) node.Node { return node.String(o...) }),
	"integer": leaf(func(o ...node.Option) node.Node { return node.Integer(o...) }),
	"number":  leaf(func(o ...node.Option) node.Node { return node.Number(o...) }),
	"boolean": leaf(func(o ...node.Option) node.Node { return node.Boolean(o...) }),
	"object": func(opts []node.Option, children []node.Node) (node.Node, error) {
		if len(children) > 0 {
			return nil, errors.New("object properties must be given via the properties key")
		}
		return node.Object(nil, opts...), nil
	},
	"array": func(opts []node.Option, children []node.Node) (node.Node, error) {
		switch len(children) {
		case 0:
			return node.Array(nil, opts...), nil
		case 1:
			return node.Array(children[0], opts...), nil
		default:
			return nil, errors.New("array accepts at most one item schema")
		}
	},
	"any_of": func(opts []node.Option, children []node.Node) (node.Node, error) {
		return node.AnyOf(children, opts...)
	},
	"one_of": func(opts []node.Option, children []node.Node) (node.Node, error) {
		return node.OneOf(children, opts...)
	},
	"all_of": func(opts []node.Option, children []node.Node) (node.Node, error) {
		return node.AllOf(children, opts...)
	},
}

func leaf(build func(...node.Option) node.Node) constructor {
	return func(opts []node.Option, children []node.Node) (node.Node, error) {
		if len(children) > 0 {
			return nil, errors.New("scalar types do not accept children")
		}
		return build(opts...), nil
	}
}

// New instantiates a node from a type tag and a configuration bag.
// Recognized bag keys are name, required, default, description, example
// and enum; anything else fails construction immediately, naming the
// offending keys. Combination nodes take their items as trailing child
// arguments.
func New(tag string, options map[string]any, children ...node.Node) (node.Node, error) {
	ctor, ok := registry[tag]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", tag)
	}
	opts, err := decodeOptions(options)
	if err != nil {
		return nil, errors.Wrapf(err, "type %q", tag)
	}
	return ctor(opts, children)
}

// decodeOptions translates a configuration bag into node options,
// rejecting unrecognized keys in one shot.
func decodeOptions(bag map[string]any) ([]node.Option, error) {
	var unknown []string
	opts := make([]node.Option, 0, len(bag))

	for key, value := range bag {
		switch key {
		case "name":
			s, ok := value.(string)
			if !ok {
				return nil, errors.Wrapf(ErrBadOption, "name must be a string, got %T", value)
			}
			opts = append(opts, node.WithName(s))
		case "required":
			b, ok := value.(bool)
			if !ok {
				return nil, errors.Wrapf(ErrBadOption, "required must be a boolean, got %T", value)
			}
			if b {
				opts = append(opts, node.Required())
			}
		case "default":
			opts = append(opts, node.WithDefault(value))
		case "description":
			s, ok := value.(string)
			if !ok {
				return nil, errors.Wrapf(ErrBadOption, "description must be a string, got %T", value)
			}
			opts = append(opts, node.WithDescription(s))
		case "example":
			opts = append(opts, node.WithExample(value))
		case "enum":
			values, ok := value.([]any)
			if !ok {
				return nil, errors.Wrapf(ErrBadOption, "enum must be a sequence, got %T", value)
			}
			opts = append(opts, node.WithEnum(values...))
		default:
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.Wrapf(ErrUnknownOption, "%s", strings.Join(unknown, ", "))
	}
	return opts, nil
}
