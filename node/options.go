package node

// Option configures a node at construction time. Options cover the
// attribute set shared by every node kind; shape information is fixed by
// the constructors themselves.
type Option func(*base)

// WithName sets the node's diagnostic identifier. The name has no
// validation effect; it matters only when the node is nested under a
// named container.
func WithName(name string) Option {
	return func(b *base) {
		b.name = name
	}
}

// Required marks absent input at this position as an error.
func Required() Option {
	return func(b *base) {
		b.required = true
	}
}

// WithDefault sets the value substituted when input is nil and the node
// is not required.
func WithDefault(value any) Option {
	return func(b *base) {
		b.defaultValue = value
		b.hasDefault = true
	}
}

// WithEnum restricts input to the given set of permitted values. The
// check runs after the shape check, so a value of the wrong shape never
// reaches it.
func WithEnum(values ...any) Option {
	return func(b *base) {
		b.enumValues = append([]any(nil), values...)
	}
}

// WithDescription attaches documentation text. No validation effect.
func WithDescription(desc string) Option {
	return func(b *base) {
		b.description = desc
	}
}

// WithExample attaches a documentation example value. No validation
// effect.
func WithExample(example any) Option {
	return func(b *base) {
		b.example = example
	}
}

func applyOptions(b *base, opts []Option) {
	for _, opt := range opts {
		opt(b)
	}
}
