package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// tomlLoader is a kong.ConfigurationLoader for TOML files.
// Keys are flag names, with either dashes or underscores, e.g.
//
//	scan = true
//	min_tokens = 2
func tomlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			v, ok := values[key]
			if !ok {
				continue
			}

			switch v.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("config key %q: expected a single value, got %T", key, v)
			}
			return fmt.Sprint(v), nil
		}
		return nil, nil
	}), nil
}
