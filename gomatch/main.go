package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/gomatch/internal/textutil"
	"github.com/mfroeh/gomatch/matcher"
)

var tokenColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

type options struct {
	Pattern   string          `arg:"" name:"pattern" help:"Pattern to match lines against" type:"string"`
	Paths     []string        `arg:"" optional:"" name:"path" help:"Paths to search" type:"path"`
	Scan      bool            `short:"s" xor:"mode" help:"Find matches anywhere in a line instead of only at its start. Can't be combined with --partial."`
	Partial   bool            `short:"p" xor:"mode" help:"Also print lines on which only some of the tokens matched."`
	MinTokens int             `name:"min-tokens" default:"1" help:"Least number of matched tokens for a partial match to be printed."`
	Stats     bool            `help:"Print the most tokens matched on any line to stderr."`
	NoColor   bool            `name:"no-color" help:"Disable colored output."`
	Config    kong.ConfigFlag `help:"Load flag defaults from a TOML file."`
}

var configPaths = []string{".gomatch.toml", "~/.config/gomatch/config.toml"}

func main() {
	var opts options
	kong.Parse(&opts,
		kong.Name("gomatch"),
		kong.Description("Recursively searches the current directory for lines matching a pattern. "+
			"A pattern consists of raw text, alternatives like (one|two) and the wildcard '.'."),
		kong.UsageOnError(),
		kong.Configuration(tomlLoader, configPaths...),
	)

	if opts.NoColor {
		color.NoColor = true
	}

	m, err := matcher.Compile(opts.Pattern)
	if err != nil {
		log.Fatalf("failed to compile pattern: %v", err)
	}

	if len(opts.Paths) == 0 {
		opts.Paths = []string{"."}
	}

	s := &searcher{
		m:         m,
		out:       os.Stdout,
		scan:      opts.Scan,
		partial:   opts.Partial,
		minTokens: opts.MinTokens,
	}
	for _, path := range opts.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}

		if info.IsDir() {
			err = s.recursivelySearchDir(path)
		} else {
			err = s.searchFile(path)
		}

		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if opts.Stats {
		fmt.Fprintf(os.Stderr, "most tokens matched: %d/%d\n", m.MostTokensMatched(), m.NumTokens())
	}
}

type searcher struct {
	m         *matcher.Matcher
	out       io.Writer
	scan      bool
	partial   bool
	minTokens int
}

func (s *searcher) recursivelySearchDir(path string) error {
	return filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// resolve symlinks, broken ones are ignored
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		// symlink may resolve to a directory, in which case we just ignore it
		if info.IsDir() {
			return nil
		}

		return s.searchFile(path)
	})
}

func (s *searcher) searchFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("searching %s: %w", path, err)
	}
	return s.search(path, string(content))
}

// search matches every line of content and prints the ones that matched
func (s *searcher) search(name, content string) error {
	printFileHeader := false
	for i, line := range strings.Split(content, "\n") {
		traces, complete := s.matchLine(line)
		if len(traces) == 0 {
			continue
		}

		if !printFileHeader {
			printFileHeader = true
			if _, err := fmt.Fprintln(s.out, name, ":"); err != nil {
				return err
			}
		}

		var err error
		if complete {
			_, err = fmt.Fprintf(s.out, "%d:%s\n", i+1, formatLine(line, traces))
		} else {
			_, err = fmt.Fprintf(s.out, "%d:%s [%d/%d]\n", i+1, formatLine(line, traces), len(traces[0]), s.m.NumTokens())
		}
		if err != nil {
			return err
		}
	}

	if printFileHeader {
		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
	}
	return nil
}

// matchLine returns the traces to print for line, nil if line shouldn't be printed
func (s *searcher) matchLine(line string) ([][]matcher.TokenMatch, bool) {
	if s.scan && s.m.NumTokens() > 0 {
		return s.m.FindAll(line, -1), true
	}

	trace := s.m.Match(line)
	if len(trace) == s.m.NumTokens() {
		return [][]matcher.TokenMatch{trace}, true
	}
	if s.partial && len(trace) > 0 && len(trace) >= s.minTokens {
		return [][]matcher.TokenMatch{trace}, false
	}
	return nil, false
}

// formatLine colors the part of line each token matched
func formatLine(line string, traces [][]matcher.TokenMatch) string {
	type colored struct {
		segment int
		color   *color.Color
	}

	var segments []string
	var highlights []colored
	lastEnd := 0
	for _, trace := range traces {
		for i, tm := range trace {
			segments = append(segments, line[lastEnd:tm.Offset], tm.Str)
			highlights = append(highlights, colored{
				segment: len(segments) - 1,
				color:   tokenColors[i%len(tokenColors)],
			})
			lastEnd = tm.Offset + len(tm.Str)
		}
	}
	segments = append(segments, line[lastEnd:])

	for _, h := range highlights {
		if segments[h.segment] == "" {
			continue
		}
		textutil.ReplaceAt(segments, h.segment, h.color.Sprint(segments[h.segment]))
	}
	return strings.Join(segments, "")
}
