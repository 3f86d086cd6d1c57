// Package matcher compiles simple patterns into tokens and matches them
// against strings token by token.
//
// A pattern consists of raw text, alternatives written as `(one|two|three)`
// and the wildcard `.` which accepts any single character. Groups don't nest
// and there is no way to escape `.`, `(`, `)` or `|`.
//
// Matching is greedy and never backtracks: for alternatives the first one
// listed that matches is taken, and matching stops at the first token that
// doesn't match.
package matcher

import (
	"fmt"
)

// Matcher is a compiled pattern. Apart from the statistic returned by
// MostTokensMatched it is immutable.
// A Matcher must not be used by multiple goroutines at the same time.
type Matcher struct {
	pattern           string
	tokens            []Token
	mostTokensMatched int

	// proposes start positions for FindAll, nil if every position has to be tried
	prefilter *prefilter
}

// Compile parses pattern into a Matcher.
// The returned error is a *CompileError if pattern contains a '(' without a closing ')'.
func Compile(pattern string) (*Matcher, error) {
	tokens, err := parseTokens(pattern)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		pattern:   pattern,
		tokens:    tokens,
		prefilter: buildPrefilter(tokens),
	}, nil
}

// MustCompile is like Compile but panics if the pattern can't be compiled.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("matcher: Compile(%q): %v", pattern, err))
	}
	return m
}

// Match matches the tokens of m against the start of s and returns what each
// token matched, up to the first token that doesn't match or until s is
// exhausted. The returned strings are substrings of s.
func (m *Matcher) Match(s string) []TokenMatch {
	matches := walk(m.tokens, s)
	m.mostTokensMatched = max(m.mostTokensMatched, len(matches))
	return matches
}

// MatchString reports whether all tokens of m match at the start of s.
func (m *Matcher) MatchString(s string) bool {
	return len(m.Match(s)) == len(m.tokens)
}

// MostTokensMatched returns the length of the longest result of Match so far.
func (m *Matcher) MostTokensMatched() int {
	return m.mostTokensMatched
}

// NumTokens returns the number of tokens the pattern compiled to.
func (m *Matcher) NumTokens() int {
	return len(m.tokens)
}

// Tokens returns a copy of the compiled tokens.
func (m *Matcher) Tokens() []Token {
	tokens := make([]Token, len(m.tokens))
	copy(tokens, m.tokens)
	return tokens
}

// String returns the pattern m was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}
