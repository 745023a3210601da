package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

// testCLI mirrors the numconv flags the defaults file most commonly sets.
type testCLI struct {
	SepLength uint32 `short:"l" default:"4"`
	SepChar   string `default:"_"`
	Bare      bool
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func newParser(t *testing.T, cli *testCLI, path string) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli, kong.Configuration(YAML, path))
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	return parser
}

func TestYAMLSuppliesDefaults(t *testing.T) {
	path := writeConfig(t, "sep-length: 8\nsep-char: \".\"\nbare: true\n")

	var cli testCLI
	parser := newParser(t, &cli, path)
	if _, err := parser.Parse(nil); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cli.SepLength != 8 {
		t.Errorf("SepLength = %d, want 8", cli.SepLength)
	}
	if cli.SepChar != "." {
		t.Errorf("SepChar = %q, want %q", cli.SepChar, ".")
	}
	if !cli.Bare {
		t.Error("Bare = false, want true")
	}
}

func TestCommandLineWinsOverFile(t *testing.T) {
	path := writeConfig(t, "sep-length: 8\n")

	var cli testCLI
	parser := newParser(t, &cli, path)
	if _, err := parser.Parse([]string{"--sep-length=2"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cli.SepLength != 2 {
		t.Errorf("SepLength = %d, want 2", cli.SepLength)
	}
}

func TestMissingFileIsIgnored(t *testing.T) {
	var cli testCLI
	parser := newParser(t, &cli, filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := parser.Parse(nil); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cli.SepLength != 4 {
		t.Errorf("SepLength = %d, want default 4", cli.SepLength)
	}
}

func TestMalformedFile(t *testing.T) {
	path := writeConfig(t, "sep-length: [unclosed\n")

	var cli testCLI
	if _, err := kong.New(&cli, kong.Configuration(YAML, path)); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
