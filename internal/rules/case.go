package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)

	quotedText = regexp.MustCompile("`.*?`|\".*?\"|'.*?'")
)

func knownCase(target string) bool {
	_, ok := toCase("a", target)
	return ok
}

// toCase converts input to the target case. The second return value is
// false for unknown case names.
func toCase(input, target string) (string, bool) {
	switch target {
	case "camel-case":
		return camelCase(input), true
	case "kebab-case":
		return strings.Join(mapWords(input, lower.String), "-"), true
	case "snake-case":
		return strings.Join(mapWords(input, lower.String), "_"), true
	case "pascal-case":
		return upperFirst(camelCase(input)), true
	case "start-case":
		return strings.Join(mapWords(input, upperFirst), " "), true
	case "upper-case", "uppercase":
		return upper.String(input), true
	case "sentence-case", "sentencecase":
		return upperFirst(input), true
	case "lower-case", "lowercase", "lowerCase":
		return lower.String(input), true
	default:
		return "", false
	}
}

// ensureCase reports whether raw already is in the target case. Quoted and
// backticked text is ignored; input that transforms to nothing or starts
// with a digit always passes.
func ensureCase(raw, target string) bool {
	input := strings.TrimSpace(quotedText.ReplaceAllString(raw, ""))
	transformed, ok := toCase(input, target)
	if !ok {
		return false
	}
	if transformed == "" {
		return true
	}
	if r, _ := utf8.DecodeRuneInString(transformed); unicode.IsDigit(r) {
		return true
	}
	return transformed == input
}

func camelCase(input string) string {
	ws := words(input)
	for i, w := range ws {
		w = lower.String(w)
		if i > 0 {
			w = upperFirst(w)
		}
		ws[i] = w
	}
	return strings.Join(ws, "")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(string(r)) + s[size:]
}

func mapWords(input string, fn func(string) string) []string {
	ws := words(input)
	for i, w := range ws {
		ws[i] = fn(w)
	}
	return ws
}

// words splits on anything that is not a letter or digit, and on
// lower-to-upper, acronym-to-word and letter/digit boundaries.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
