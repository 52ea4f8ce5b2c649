package tracery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	// String must render source that re-parses to the same rule.
	sources := []string{
		"",
		"hello, world.",
		"#one#",
		"#one.two.three#",
		"foo #bar# baz",
		"#[one:#two#]name#",
		"#[one:a:b c]name#",
		"#[#two#]name#",
		"#[e:#[a:#b.c#]d#][f:#g.h#]i.j.k#",
		"[foo:POP]",
		"a[b:c]d",
	}
	for _, source := range sources {
		rule, err := ParseRule(source)
		require.NoError(t, err, "%q", source)
		reparsed, err := ParseRule(rule.String())
		require.NoError(t, err, "%q -> %q", source, rule.String())
		require.Equal(t, rule, reparsed, "%q -> %q", source, rule.String())
	}
}

func TestStringExact(t *testing.T) {
	for _, source := range []string{
		"hello",
		"#one#",
		"#one.two#",
		"#[a:b]c.d#",
		"#[#t#]k#",
	} {
		rule, err := ParseRule(source)
		require.NoError(t, err)
		require.Equal(t, source, rule.String())
	}
}

func TestStringBareActionSpelling(t *testing.T) {
	// Bare rule-level actions render in their tag spelling.
	rule, err := ParseRule("[foo:POP]")
	require.NoError(t, err)
	require.Equal(t, "#[foo:POP]#", rule.String())
}
