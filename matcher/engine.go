package matcher

import (
	"strings"
	"unicode/utf8"
)

// match tries to match t at the start of in and returns the number of bytes consumed
func (t *Token) match(in string) (int, bool) {
	switch t.Kind {
	case RawText:
		if strings.HasPrefix(in, t.Literal) {
			return len(t.Literal), true
		}
	case OneOfText:
		// first listed alternative wins, not the longest
		for _, alt := range t.Alternatives {
			if strings.HasPrefix(in, alt) {
				return len(alt), true
			}
		}
	case WildCard:
		if len(in) > 0 {
			_, size := utf8.DecodeRuneInString(in)
			return size, true
		}
	default:
		panic("unexpected token kind")
	}
	return 0, false
}

// walk matches tokens left to right against in, stopping at the first token
// that doesn't match or as soon as in is exhausted. It never backtracks.
func walk(tokens []Token, in string) []TokenMatch {
	var matches []TokenMatch
	i := 0
	for k := range tokens {
		if i >= len(in) {
			break
		}

		tok := &tokens[k]
		adv, ok := tok.match(in[i:])
		if !ok {
			break
		}
		matches = append(matches, TokenMatch{
			Token:  tok,
			Offset: i,
			Str:    in[i : i+adv],
		})
		i += adv
	}
	return matches
}
