package tracery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenJSON(t *testing.T) {
	out, err := Flatten(`{"origin": ["foo #bar#"], "bar": ["bar"]}`, nil)
	require.NoError(t, err)
	require.Equal(t, "foo bar", out)
}

func TestFlattenMap(t *testing.T) {
	out, err := FlattenMap(map[string][]string{
		"origin": {"#a##b#"},
		"a":      {"a"},
		"b":      {"b"},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := FromJSON(`{"origin": ["a"`)
	var je *JsonError
	require.ErrorAs(t, err, &je)
	require.Contains(t, err.Error(), "json error: ")
}

func TestFromJSONWrongShape(t *testing.T) {
	for _, src := range []string{
		`[]`,
		`"origin"`,
		`{"origin": "not an array"}`,
		`{"origin": [1, 2]}`,
		`{"origin": {"nested": ["a"]}}`,
		`{"origin": [["extra nesting"]]}`,
	} {
		_, err := FromJSON(src)
		var je *JsonError
		require.ErrorAs(t, err, &je, "%q", src)
	}
}

func TestFromJSONParseErrorPropagates(t *testing.T) {
	_, err := FromJSON(`{"origin": ["#unclosed"]}`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestFlattenJSONConvenienceErrors(t *testing.T) {
	_, err := Flatten(`not json`, nil)
	var je *JsonError
	require.ErrorAs(t, err, &je)
}
