package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// A word may carry inner punctuation (node.js, ci/cd, AT&T, don't) and
// trailing + or # (c++, c#). Anything else is a single-rune token.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}](?:[\p{L}\p{N}+#]|['./&-][\p{L}\p{N}])*[+#]*|\S`)

// Tokenize splits text into tokens with lowercase forms, lemmas and flags.
func Tokenize(text string) []Token {
	locs := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(locs))
	for _, loc := range locs {
		surface := text[loc[0]:loc[1]]
		lower := strings.ToLower(surface)
		tok := Token{
			Text:    surface,
			Lower:   lower,
			Start:   loc[0],
			End:     loc[1],
			IsPunct: isPunct(surface),
		}
		if tok.IsPunct {
			tok.Lemma = lower
		} else {
			tok.Lemma = Lemmatize(surface)
			_, tok.IsStop = stopWords[lower]
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isPunct(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// LowerTokens returns the lowercase forms of the non-punctuation tokens of s.
func LowerTokens(s string) []string {
	var out []string
	for _, t := range Tokenize(s) {
		if !t.IsPunct {
			out = append(out, t.Lower)
		}
	}
	return out
}
