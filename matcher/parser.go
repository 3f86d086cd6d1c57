package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminatedGroup is the kind of a CompileError for a '(' without a matching ')'.
var ErrUnterminatedGroup = errors.New("unterminated group")

// CompileError is returned by Compile if the pattern is malformed.
type CompileError struct {
	Pattern string
	// Offset of the offending character in Pattern
	Offset int
	Kind   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error at %d in %q: %v", e.Offset, e.Pattern, e.Kind)
}

func (e *CompileError) Unwrap() error {
	return e.Kind
}

func newCompileError(re string, i int, kind error) *CompileError {
	return &CompileError{Pattern: re, Offset: i, Kind: kind}
}

func parseTokens(re string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(re); {
		tok, err := parse(re, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		i += len(tok.Src)
	}
	return tokens, nil
}

func parse(re string, i int) (Token, error) {
	switch re[i] {
	case '.':
		return parseWildCard(re, i), nil
	case '(':
		return parseGroup(re, i)
	}
	return parseRawText(re, i), nil
}

// .
func parseWildCard(re string, i int) Token {
	return Token{Kind: WildCard, Src: re[i : i+1], Offset: i}
}

// (...|...|...)
// groups don't nest, the first ')' closes the group
func parseGroup(re string, i int) (Token, error) {
	end := strings.IndexByte(re[i:], ')')
	if end == -1 {
		return Token{}, newCompileError(re, i, ErrUnterminatedGroup)
	}
	end += i

	return Token{
		Kind:         OneOfText,
		Alternatives: strings.Split(re[i+1:end], "|"),
		Src:          re[i : end+1],
		Offset:       i,
	}, nil
}

// everything up to the next '.' or '('
func parseRawText(re string, i int) Token {
	end := strings.IndexAny(re[i:], ".(")
	if end == -1 {
		end = len(re)
	} else {
		end += i
	}

	return Token{Kind: RawText, Literal: re[i:end], Src: re[i:end], Offset: i}
}
