package tracery

// ParseRule parses a single rule source string into its node sequence.
// Empty input parses to an empty rule, which flattens to "".
func ParseRule(source string) (Rule, error) {
	p := newParser(source)
	rule, err := p.rule(false)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// Flatten constructs a Grammar from a JSON grammar string and produces one
// output from its default key.
func Flatten(src string, rng Rand) (string, error) {
	g, err := FromJSON(src)
	if err != nil {
		return "", err
	}
	return g.Flatten(rng)
}

// FlattenMap constructs a Grammar from a map of symbol names to rule
// sources and produces one output from its default key.
func FlattenMap(m map[string][]string, rng Rand) (string, error) {
	g, err := FromMap(m)
	if err != nil {
		return "", err
	}
	return g.Flatten(rng)
}
