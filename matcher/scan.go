package matcher

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// prefilter finds occurrences of the literals the first token can start with.
type prefilter struct {
	auto *ahocorasick.Automaton
	// length of the longest literal
	longest int
}

// buildPrefilter builds an automaton over the literals the first token can
// start with. Returns nil if the first token can match anything, i.e. it is
// a wildcard or an alternative is empty.
func buildPrefilter(tokens []Token) *prefilter {
	if len(tokens) == 0 {
		return nil
	}

	var literals []string
	switch first := tokens[0]; first.Kind {
	case RawText:
		literals = []string{first.Literal}
	case OneOfText:
		literals = first.Alternatives
	default:
		return nil
	}

	builder := ahocorasick.NewBuilder()
	longest := 0
	for _, lit := range literals {
		if lit == "" {
			return nil
		}
		builder.AddPattern([]byte(lit))
		longest = max(longest, len(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		// fall back to trying every position
		return nil
	}
	return &prefilter{auto: auto, longest: longest}
}

// skip returns the first rune boundary of s at or after i from which a
// literal can start, or false if no literal occurs in s[i:].
// The automaton reports the occurrence that ends first, not the one that
// starts first, so every start from its end minus the longest literal on
// has to be tried.
func (p *prefilter) skip(s string, haystack []byte, i int) (int, bool) {
	candidate := p.auto.Find(haystack, i)
	if candidate == nil {
		return i, false
	}

	for lower := candidate.End - p.longest; i < lower; {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, true
}

// FindAll finds up to maxCount non-overlapping complete matches of m in s,
// trying start positions from left to right.
// To return all matches pass a maxCount of -1.
// Offsets of the returned matches are relative to s.
func (m *Matcher) FindAll(s string, maxCount int) [][]TokenMatch {
	if len(m.tokens) == 0 {
		return nil
	}

	var haystack []byte
	if m.prefilter != nil {
		haystack = []byte(s)
	}

	var all [][]TokenMatch
	for i := 0; i < len(s); {
		if maxCount != -1 && len(all) >= maxCount {
			break
		}

		if m.prefilter != nil {
			var ok bool
			if i, ok = m.prefilter.skip(s, haystack, i); !ok {
				break
			}
		}

		matches := m.Match(s[i:])
		if len(matches) == len(m.tokens) {
			for j := range matches {
				matches[j].Offset += i
			}
			all = append(all, matches)

			last := matches[len(matches)-1]
			if end := last.Offset + len(last.Str); end > i {
				i = end
				continue
			}
		}

		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return all
}

// Find returns the leftmost complete match of m in s, or nil if there is none.
func (m *Matcher) Find(s string) []TokenMatch {
	all := m.FindAll(s, 1)
	if len(all) < 1 {
		return nil
	}
	return all[0]
}
