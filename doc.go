// Package tracery generates text from generative grammars in the tracery
// language.
//
// A grammar maps symbol names to lists of alternative rule strings. Rule
// strings mix plain text with #tag# references to other symbols; expanding
// a starting symbol recursively replaces each tag with a randomly selected
// alternative of the referenced symbol until only text remains.
//
//	g, err := tracery.FromJSON(`{
//	    "origin": ["foo #bar#", "#baz# quux"],
//	    "bar": ["bar", "BAR"],
//	    "baz": ["baz", "BaZ"]
//	}`)
//	out, err := g.Flatten(rand.New(rand.NewSource(42)))
//
// The supported rule syntax is:
//
//   - `#key#` Expand to a random alternative of the symbol "key".
//   - `#key.modifier#` Post-process the expansion; modifiers chain left to
//     right (`#animal.s.capitalize#`).
//   - `#[label:value]key#` Action: expand "value" and push the result as a
//     new binding for "label" before resolving "key". Bindings stack;
//     `[label:POP]` pops the most recent one, removing the symbol when its
//     stack empties.
//   - `#[#other#]key#` Unlabeled action: expand the inner tag purely for
//     the side effects of its own actions; the output is discarded.
//   - `[label:value]` Actions may also appear bare in a rule, outside any
//     tag.
//
// Actions make it possible to fix a choice once and reuse it:
//
//	{
//	    "name": ["Arjun", "Yuuma", "Darcy", "Mia"],
//	    "animal": ["unicorn", "raven", "coyote"],
//	    "story": ["#hero# traveled with a pet #heroPet#. #hero# loved it."],
//	    "origin": ["#[hero:#name#][heroPet:#animal#]story#"]
//	}
//
// Both occurrences of #hero# in "story" expand to the same generated name.
//
// The built-in modifiers are capitalize, capitalizeAll, inQuotes, comma, s,
// a and ed; all of them operate on Unicode characters, never bytes.
// Additional modifiers can be registered per grammar with AddModifier or
// the WithModifier option. Unknown modifier names pass the value through
// unchanged.
//
// Flatten expands the default symbol ("origin" unless changed) on a
// private copy of the grammar. Execute expands an explicit symbol in place,
// so bindings pushed by actions remain visible to later calls. Both take
// the random source as an argument; supply a seeded source for
// reproducible output. Grammars with cyclic rules (a symbol whose every
// expansion references itself) do not terminate; bounding recursion is the
// caller's responsibility.
package tracery
