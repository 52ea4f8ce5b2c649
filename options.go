package tracery

// An Option modifies a Grammar at construction time.
type Option func(g *Grammar)

// WithDefaultKey sets the starting symbol used by Flatten.
func WithDefaultKey(key string) Option {
	return func(g *Grammar) {
		g.defaultKey = key
	}
}

// WithModifier registers an additional modifier, or replaces a built-in of
// the same name.
func WithModifier(name string, fn ModifierFunc) Option {
	return func(g *Grammar) {
		g.modifiers[name] = fn
	}
}
