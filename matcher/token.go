package matcher

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	// RawText is a literal run that has to appear verbatim, e.g. `abc`
	RawText TokenKind = iota
	// OneOfText is a set of alternatives, e.g. `(one|two|three)`
	OneOfText
	// WildCard accepts any single character, `.`
	WildCard
)

func (k TokenKind) String() string {
	switch k {
	case RawText:
		return "RawText"
	case OneOfText:
		return "OneOfText"
	case WildCard:
		return "WildCard"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single compiled element of a pattern.
// All strings are substrings of the pattern the token was compiled from.
type Token struct {
	Kind TokenKind
	// set for RawText
	Literal string
	// set for OneOfText, in the order they appear in the pattern
	Alternatives []string
	// Src is the span of the pattern this token was compiled from
	Src string
	// Offset of Src in the pattern
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case RawText:
		return fmt.Sprintf("RawText(%q)", t.Literal)
	case OneOfText:
		quoted := make([]string, len(t.Alternatives))
		for i, a := range t.Alternatives {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		return "OneOfText(" + strings.Join(quoted, ", ") + ")"
	case WildCard:
		return "WildCard"
	}
	return t.Kind.String()
}

// TokenMatch is the part of a candidate string matched by a single token.
type TokenMatch struct {
	Token  *Token
	Offset int
	Str    string
}
