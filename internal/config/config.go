// Package config supplies flag defaults for numconv from an optional
// YAML file. The file holds a flat mapping of long flag names to values
// (for example "sep-length: 8" or "bare: true"); values given on the
// command line always win over file values.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v2"
)

// DefaultPath returns the conventional location of the defaults file,
// or "" when the user config directory cannot be determined. A missing
// file at this path is not an error.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "numconv", "config.yaml")
}

// YAML is a kong configuration loader that resolves flag values from a
// flat YAML mapping keyed by long flag name.
func YAML(r io.Reader) (kong.Resolver, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	values := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		v, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}
		return v, nil
	}), nil
}
