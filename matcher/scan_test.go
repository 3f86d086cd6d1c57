package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func matchedStrings(all [][]TokenMatch) [][]string {
	var out [][]string
	for _, matches := range all {
		var strs []string
		for _, m := range matches {
			strs = append(strs, m.Str)
		}
		out = append(out, strs)
	}
	return out
}

func TestFindAll(t *testing.T) {
	tests := map[string]struct {
		givenPattern  string
		givenString   string
		givenMaxCount int
		wantMatches   [][]string
	}{
		"happy bananas": {
			givenPattern:  "ba(n|r).",
			givenString:   "banana bar barn",
			givenMaxCount: -1,
			wantMatches: [][]string{
				{"ba", "n", "a"},
				{"ba", "r", " "},
				{"ba", "r", "n"},
			},
		},
		"max count": {
			givenPattern:  "ba(n|r).",
			givenString:   "banana bar barn",
			givenMaxCount: 1,
			wantMatches:   [][]string{{"ba", "n", "a"}},
		},
		"wildcard first": {
			givenPattern:  ".a",
			givenString:   "xaya",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"x", "a"}, {"y", "a"}},
		},
		"matches don't overlap": {
			givenPattern:  "aa",
			givenString:   "aaaaa",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"aa"}, {"aa"}},
		},
		"first listed alternative is used at every position": {
			givenPattern:  "(a|ab)c",
			givenString:   "abc abc",
			givenMaxCount: -1,
		},
		"partial matches are not reported": {
			givenPattern:  "abc.",
			givenString:   "xxabc",
			givenMaxCount: -1,
		},
		"empty alternative disables prefilter": {
			givenPattern:  "(|x)y",
			givenString:   "axyy",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"", "y"}, {"", "y"}},
		},
		"alternative starting earlier but ending later": {
			givenPattern:  "(abcd|c)x",
			givenString:   "abcdx",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"abcd", "x"}},
		},
		"shorter alternative inside longer one": {
			givenPattern:  "(xyzw|yz)w",
			givenString:   "xyzww",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"xyzw", "w"}},
		},
		"longest alternative starts first": {
			givenPattern:  "(bcd|abcde)",
			givenString:   "abcde",
			givenMaxCount: -1,
			wantMatches:   [][]string{{"abcde"}},
		},
		"start positions are rune boundaries": {
			givenPattern:  "(\xa9|q).",
			givenString:   "éz",
			givenMaxCount: -1,
		},
		"empty pattern": {
			givenPattern:  "",
			givenString:   "abc",
			givenMaxCount: -1,
		},
		"empty string": {
			givenPattern:  "a",
			givenString:   "",
			givenMaxCount: -1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// given
			m := MustCompile(tt.givenPattern)

			// when
			gotMatches := m.FindAll(tt.givenString, tt.givenMaxCount)

			// then
			if d := cmp.Diff(tt.wantMatches, matchedStrings(gotMatches)); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestFindAllOffsets(t *testing.T) {
	// given
	m := MustCompile("(é|ü).")
	s := "aéb üc"

	// when
	gotMatches := m.FindAll(s, -1)

	// then
	var gotOffsets [][]int
	for _, matches := range gotMatches {
		var offsets []int
		for _, tm := range matches {
			offsets = append(offsets, tm.Offset)
			if d := cmp.Diff(s[tm.Offset:tm.Offset+len(tm.Str)], tm.Str); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		}
		gotOffsets = append(gotOffsets, offsets)
	}
	if d := cmp.Diff([][]int{{1, 3}, {5, 7}}, gotOffsets); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestFindAllPrefilterAgrees(t *testing.T) {
	tests := map[string]struct {
		givenPattern string
		givenString  string
	}{
		"raw text": {
			givenPattern: "na.",
			givenString:  "banana nana bandana",
		},
		"alternatives": {
			givenPattern: "(cat|dog|bird)s",
			givenString:  "cats and dogs and birds and a bird",
		},
		"overlapping alternatives": {
			givenPattern: "(ab|b|abc)c",
			givenString:  "abcbcabcc",
		},
		"multi byte": {
			givenPattern: "(ß|💪).",
			givenString:  "aß💪ßx💪",
		},
		"earlier start ends later": {
			givenPattern: "(abcd|c)x",
			givenString:  "abcdx abcx cx",
		},
		"shorter alternative inside longer one": {
			givenPattern: "(xyzw|yz)w",
			givenString:  "xyzww yzw",
		},
		"longest alternative starts first": {
			givenPattern: "(bcd|abcde)",
			givenString:  "abcde bcd",
		},
		"literal is part of a multi byte character": {
			givenPattern: "(\xa9|q).",
			givenString:  "éz qé",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// given
			withPrefilter := MustCompile(tt.givenPattern)
			if withPrefilter.prefilter == nil {
				t.Fatalf("expected prefilter for %q", tt.givenPattern)
			}
			withoutPrefilter := MustCompile(tt.givenPattern)
			withoutPrefilter.prefilter = nil

			// when
			gotMatches := withPrefilter.FindAll(tt.givenString, -1)
			wantMatches := withoutPrefilter.FindAll(tt.givenString, -1)

			// then
			if d := cmp.Diff(wantMatches, gotMatches); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
			if d := cmp.Diff(withoutPrefilter.MostTokensMatched(), withPrefilter.MostTokensMatched()); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestFind(t *testing.T) {
	// given
	m := MustCompile("b.")

	// when
	got := m.Find("abcbd")

	// then
	if d := cmp.Diff([]string{"b", "c"}, matchedStrings([][]TokenMatch{got})[0]); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
	if got := m.Find("xyz"); got != nil {
		t.Errorf("expected no match, got %v", got)
	}
}
