// Package label turns column and type names into display text.
package label

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func converts a raw name into a display label.
type Func func(string) string

var (
	splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

	lowerCaser = cases.Lower(language.Und)
	titleCaser = cases.Title(language.Und)
)

// Prettify renders a name in sentence case: "first_name" and "FirstName" both
// become "First name".
func Prettify(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}
	joined := lowerCaser.String(strings.Join(words, " "))
	r, size := utf8.DecodeRuneInString(joined)
	return string(unicode.ToUpper(r)) + joined[size:]
}

// Capitalize tidies text a caller already chose, such as a header alias.
// Underscores become spaces and the first letter is upper-cased; hyphens,
// acronyms and the casing of later letters are kept. A leading lower-case
// letter followed by an upper-case one ("iPhone") is left alone.
func Capitalize(text string) string {
	text = strings.Join(strings.Fields(strings.ReplaceAll(text, "_", " ")), " ")
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	if next, _ := utf8.DecodeRuneInString(text[size:]); unicode.IsUpper(next) {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:]
}

// Title renders every word with a leading capital: "first_name" becomes
// "First Name".
func Title(name string) string {
	words := splitWords(name)
	for i, word := range words {
		words[i] = titleCaser.String(word)
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var out []string
	for _, word := range splitWordsPattern.Split(name, -1) {
		if word == "" {
			continue
		}
		out = append(out, strings.Fields(splitCamel(word))...)
	}
	return out
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev, _ := utf8.DecodeLastRuneInString(input[:index])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
