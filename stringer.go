package tracery

import "strings"

// String renders the rule back to source. The output re-parses to an
// equivalent rule; bare rule-level actions come back in their #[...]#
// spelling.
func (r Rule) String() string {
	var out strings.Builder
	for _, n := range r {
		out.WriteString(n.String())
	}
	return out.String()
}

func (t Text) String() string { return string(t) }

func (t Tag) String() string {
	var out strings.Builder
	out.WriteRune('#')
	for _, action := range t.Actions {
		out.WriteString(action.String())
	}
	out.WriteString(t.Key)
	for _, name := range t.Modifiers {
		out.WriteRune('.')
		out.WriteString(name)
	}
	out.WriteRune('#')
	return out.String()
}

func (a Action) String() string {
	if a.Label == "" {
		return "[" + a.Rule.String() + "]"
	}
	return "[" + a.Label + ":" + a.Rule.String() + "]"
}
