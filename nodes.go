package tracery

import "strings"

// A Node is one element of a parsed rule: literal text, or a tag to expand.
//
// Node is a closed sum; Text and Tag are the only implementations.
type Node interface {
	String() string
	// flatten expands the node against g, consuming rng for alternative
	// selection. Actions executed along the way mutate g.
	flatten(g *Grammar, rng Rand) (string, error)
}

// Text is literal rule text, emitted verbatim.
type Text string

func (t Text) flatten(g *Grammar, rng Rand) (string, error) {
	return string(t), nil
}

// A Tag is a #...# reference in a rule.
//
// Key names the symbol whose value replaces the tag; it is empty when the
// tag only wraps actions. Actions run, in order, before Key resolves.
// Modifiers are applied to the resolved value in order; they are not
// commutative.
type Tag struct {
	Key       string
	Actions   []Action
	Modifiers []string
}

func (t Tag) flatten(g *Grammar, rng Rand) (string, error) {
	for _, action := range t.Actions {
		if err := action.execute(g, rng); err != nil {
			return "", err
		}
	}
	if t.Key == "" {
		return "", nil
	}
	alternatives, ok := g.Get(t.Key)
	if !ok || len(alternatives) == 0 {
		return "", &MissingKeyError{Key: t.Key}
	}
	chosen, err := choose(alternatives, rng).flatten(g, rng)
	if err != nil {
		return "", err
	}
	for _, name := range t.Modifiers {
		if fn, ok := g.modifiers[name]; ok {
			chosen = fn(chosen)
		}
	}
	return chosen, nil
}

// An Action is a [...]-delimited side effect inside a tag.
//
// A labeled action flattens its rule and pushes the result onto Label's
// rule stack, except when the rule is the literal POP sentinel, which pops
// the stack instead. An unlabeled action flattens its rule purely for the
// side effects of the tags within it; the output is discarded.
type Action struct {
	Label string
	Rule  Rule
}

// isPop reports whether the action's rule is the POP sentinel. The sentinel
// is recognised structurally, not as a parser token.
func (a Action) isPop() bool {
	return len(a.Rule) == 1 && a.Rule[0] == Text("POP")
}

func (a Action) execute(g *Grammar, rng Rand) error {
	if a.Label != "" && a.isPop() {
		g.popRule(a.Label)
		return nil
	}
	body, err := a.Rule.flatten(g, rng)
	if err != nil {
		return err
	}
	if a.Label != "" {
		g.pushRule(a.Label, body)
	}
	return nil
}

// A Rule is one parsed alternative: an ordered node sequence. Flattening a
// rule concatenates the flattened nodes with no separator.
type Rule []Node

func (r Rule) flatten(g *Grammar, rng Rand) (string, error) {
	var out strings.Builder
	for _, node := range r {
		s, err := node.flatten(g, rng)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// choose selects uniformly among alternatives. A single alternative is
// selected without consuming the random source.
func choose(alternatives []Rule, rng Rand) Rule {
	if len(alternatives) == 1 {
		return alternatives[0]
	}
	return alternatives[rng.Intn(len(alternatives))]
}
