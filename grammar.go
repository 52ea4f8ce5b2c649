package tracery

import (
	"encoding/json"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultKey is the starting symbol used by Flatten on freshly constructed
// grammars.
const DefaultKey = "origin"

// Rand is the source of randomness used to select among alternatives.
// *math/rand.Rand satisfies it; callers who need reproducible output supply
// a seeded source.
type Rand interface {
	Intn(n int) int
}

// Grammar maps symbol names to stacks of alternative lists.
//
// Each symbol holds a stack of frames; the top frame is the active set of
// alternatives during expansion. Labeled actions push and pop frames, which
// is what gives [k:v]...#k#...[k:POP] its scoped behaviour. A Grammar also
// owns its modifier table and default starting key.
//
// A Grammar is not safe for concurrent use; parallel expansion requires a
// grammar per goroutine (Flatten already operates on a private clone).
type Grammar struct {
	symbols    map[string][][]Rule
	defaultKey string
	modifiers  map[string]ModifierFunc
}

// FromMap constructs a Grammar from a map of symbol names to rule source
// strings. Every rule string is parsed eagerly; the first failure aborts
// construction with a ParseError.
func FromMap(m map[string][]string, options ...Option) (*Grammar, error) {
	g := &Grammar{
		symbols:    make(map[string][][]Rule, len(m)),
		defaultKey: DefaultKey,
		modifiers:  defaultModifiers(),
	}
	for key, sources := range m {
		rules := make([]Rule, 0, len(sources))
		for _, source := range sources {
			rule, err := ParseRule(source)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		g.symbols[key] = [][]Rule{rules}
	}
	for _, option := range options {
		option(g)
	}
	return g, nil
}

// FromJSON constructs a Grammar from a JSON object whose values are arrays
// of rule source strings. Malformed JSON, or any other shape, is a
// JsonError.
func FromJSON(src string, options ...Option) (*Grammar, error) {
	var m map[string][]string
	if err := json.Unmarshal([]byte(src), &m); err != nil {
		return nil, &JsonError{Err: err}
	}
	return FromMap(m, options...)
}

// SetDefaultKey changes the starting symbol used by Flatten. The key is not
// required to exist at set time.
func (g *Grammar) SetDefaultKey(key string) {
	g.defaultKey = key
}

// AddModifier registers a modifier under the given name, replacing any
// existing registration.
func (g *Grammar) AddModifier(name string, fn ModifierFunc) {
	g.modifiers[name] = fn
}

// Keys returns the defined symbol names in sorted order.
func (g *Grammar) Keys() []string {
	keys := maps.Keys(g.symbols)
	slices.Sort(keys)
	return keys
}

// Get returns the top frame of the key's rule stack.
func (g *Grammar) Get(key string) ([]Rule, bool) {
	stack, ok := g.symbols[key]
	if !ok {
		return nil, false
	}
	return stack[len(stack)-1], true
}

// pushRule pushes a single-alternative frame holding body as literal text
// onto the key's stack, creating the stack if absent.
func (g *Grammar) pushRule(key, body string) {
	frame := []Rule{{Text(body)}}
	g.symbols[key] = append(g.symbols[key], frame)
}

// popRule removes the top frame of the key's stack. Popping the last frame
// removes the key entirely.
func (g *Grammar) popRule(key string) {
	stack, ok := g.symbols[key]
	if !ok {
		return
	}
	if len(stack) < 2 {
		delete(g.symbols, key)
		return
	}
	g.symbols[key] = stack[:len(stack)-1]
}

// clone snapshots the grammar: rule-stack state, default key and modifier
// table. Frames are never mutated in place after creation, so stacks are
// cloned shallowly. Modifier functions are shared.
func (g *Grammar) clone() *Grammar {
	symbols := make(map[string][][]Rule, len(g.symbols))
	for key, stack := range g.symbols {
		symbols[key] = slices.Clone(stack)
	}
	return &Grammar{
		symbols:    symbols,
		defaultKey: g.defaultKey,
		modifiers:  maps.Clone(g.modifiers),
	}
}

// Execute expands the given starting key in place. Side effects of actions
// (pushed and popped frames) persist on g, including those applied before
// an error aborts the expansion.
func (g *Grammar) Execute(key string, rng Rand) (string, error) {
	alternatives, ok := g.Get(key)
	if !ok || len(alternatives) == 0 {
		return "", &MissingKeyError{Key: key}
	}
	return choose(alternatives, rng).flatten(g, rng)
}

// Flatten expands the default key on a private clone of the grammar; g
// itself is never mutated.
func (g *Grammar) Flatten(rng Rand) (string, error) {
	return g.clone().Execute(g.defaultKey, rng)
}
