package tracery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A ModifierFunc is a pure string transformation applied to a tag's
// resolved value.
//
// All built-in modifiers reason about Unicode characters, never bytes.
type ModifierFunc func(string) string

// defaultModifiers returns a fresh table of the built-in modifiers. Every
// new Grammar is seeded with these.
func defaultModifiers() map[string]ModifierFunc {
	return map[string]ModifierFunc{
		"capitalize":    capitalize,
		"capitalizeAll": capitalizeAll,
		"inQuotes":      inQuotes,
		"comma":         comma,
		"s":             pluralize,
		"a":             article,
		"ed":            pastTense,
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// capitalize uppercases the first character, leaving the remainder
// untouched. Full case mapping applies, so the result may grow ("ß"
// becomes "SS"); strings.ToUpper only performs the simple per-rune mapping
// and would leave "ß" unchanged.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// capitalizeAll capitalizes every whitespace-separated word, preserving
// each whitespace run verbatim.
func capitalizeAll(s string) string {
	var out strings.Builder
	for s != "" {
		first, _ := utf8.DecodeRuneInString(s)
		space := unicode.IsSpace(first)
		end := strings.IndexFunc(s, func(r rune) bool { return unicode.IsSpace(r) != space })
		if end == -1 {
			end = len(s)
		}
		if space {
			out.WriteString(s[:end])
		} else {
			out.WriteString(capitalize(s[:end]))
		}
		s = s[end:]
	}
	return out.String()
}

func inQuotes(s string) string {
	return `"` + s + `"`
}

// comma appends a "," unless the input already ends in sentence
// punctuation.
func comma(s string) string {
	switch {
	case strings.HasSuffix(s, ","),
		strings.HasSuffix(s, "."),
		strings.HasSuffix(s, "!"),
		strings.HasSuffix(s, "?"):
		return s
	}
	return s + ","
}

// pluralize produces the English plural using the standard rules, with a
// small fixed irregular set.
func pluralize(s string) string {
	switch s {
	case "goose":
		return "geese"
	case "ox":
		return "oxen"
	case "index":
		return "indices"
	}
	if s == "" {
		return "s"
	}
	runes := []rune(s)
	last := runes[len(runes)-1]
	switch {
	case last == 'y':
		if len(runes) >= 2 && isVowel(runes[len(runes)-2]) {
			return s + "s"
		}
		return string(runes[:len(runes)-1]) + "ies"
	case last == 's', last == 'x', last == 'z',
		strings.HasSuffix(s, "ch"), strings.HasSuffix(s, "sh"):
		return s + "es"
	}
	return s + "s"
}

// article prepends the English indefinite article.
func article(s string) string {
	first, _ := utf8.DecodeRuneInString(s)
	if isVowel(first) {
		return "an " + s
	}
	return "a " + s
}

// pastTense rewrites the first word into English past tense, leaving
// leading whitespace and everything after the first word untouched. Input
// with no word at all comes back unchanged.
func pastTense(s string) string {
	wordStart := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if wordStart == -1 {
		return s
	}
	wordEnd := strings.IndexFunc(s[wordStart:], unicode.IsSpace)
	if wordEnd == -1 {
		wordEnd = len(s)
	} else {
		wordEnd += wordStart
	}
	word := []rune(s[wordStart:wordEnd])
	var past string
	switch last := word[len(word)-1]; {
	case last == 'y':
		if len(word) >= 2 && isVowel(word[len(word)-2]) {
			past = string(word) + "ed"
		} else {
			past = string(word[:len(word)-1]) + "ied"
		}
	case last == 'e':
		past = string(word) + "d"
	default:
		past = string(word) + "ed"
	}
	return s[:wordStart] + past + s[wordEnd:]
}
