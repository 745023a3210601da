// Command numconv is a CLI number conversion utility. It converts a
// numeral given in one base into its representation in one or more
// other bases, with optional digit grouping and leading-zero padding.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/znielsen/numconv/core/baseconv"
	apperrors "github.com/znielsen/numconv/core/errors"
	"github.com/znielsen/numconv/core/resolve"
	"github.com/znielsen/numconv/internal/config"
	"github.com/znielsen/numconv/internal/logging"
)

const version = "0.4.0"

// defaultToBases is rendered when no output bases were requested.
var defaultToBases = []string{"2", "8", "10", "16"}

// options defines the command-line interface for numconv.
type options struct {
	// Flags
	Pad       uint8  `help:"Pad the output with leading 0s." short:"p" default:"0"`
	SepLength uint32 `help:"Put a separator every N characters." short:"l" default:"4"`
	SepChar   string `help:"Separator character." default:"_"`
	NoSep     bool   `help:"Do not group the output."`
	FromBase  uint32 `help:"Input base (the base character takes precedence)." short:"f" default:"10"`
	Silent    bool   `help:"Do not print output (for use with clipboard tools)." short:"s"`
	Bare      bool   `help:"Omit the \"Base NN: \" prefix."`
	Verbose   int    `help:"Verbosity (repeat for more)." short:"v" type:"counter"`

	Config  kong.ConfigFlag  `help:"Load flag defaults from a YAML file."`
	Version kong.VersionFlag `help:"Print version information and quit."`

	// Positional arguments. The first slot is deliberately overloaded:
	// it may hold a base alias or, when the alias is skipped, the number
	// itself. core/resolve untangles the shifted slots.
	FromBaseChar string   `arg:"" help:"Symbolic input base (b, o, d, h or x), or the number to convert."`
	FromNum      *string  `arg:"" optional:"" help:"Number to convert."`
	ToBases      []string `arg:"" optional:"" help:"Bases to convert to, given in base 10."`
}

func main() {
	var cli options
	kong.Parse(&cli,
		kong.Name("numconv"),
		kong.Description("A CLI number conversion utility."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(config.YAML, config.DefaultPath()),
	)
	logging.Setup(cli.Verbose)

	if err := run(&cli, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run performs one conversion invocation, writing one line per requested
// base to out. The first error encountered aborts the remaining
// conversions.
func run(opts *options, out io.Writer) error {
	sep, err := separatorRune(opts.SepChar)
	if err != nil {
		return err
	}

	num := ""
	if opts.FromNum != nil {
		num = *opts.FromNum
	}
	res := resolve.Resolve(opts.FromBaseChar, num, opts.FromNum != nil, opts.FromBase, opts.ToBases)
	slog.Debug("resolved input",
		"kind", res.Kind,
		"base", res.Base,
		"literal", res.Literal,
		"to_bases", res.ToBases)

	if !res.HasLiteral {
		return fmt.Errorf("no number to convert was provided: %w", apperrors.ErrInputBase)
	}

	value, err := baseconv.ParseLiteral(res.Literal, res.Base, sep)
	if err != nil {
		return err
	}
	slog.Info("parsed input", "literal", res.Literal, "base", res.Base, "value", value)

	toBases := res.ToBases
	if len(toBases) == 0 {
		toBases = defaultToBases
	}

	for _, req := range toBases {
		target, err := strconv.ParseUint(req, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid target base %q: target bases are given in base 10: %w",
				req, apperrors.ErrTargetBase)
		}
		rendered, err := baseconv.Render(value, uint32(target))
		if err != nil {
			return err
		}
		if opts.Silent {
			continue
		}
		rendered = baseconv.Pad(rendered, opts.Pad)
		if !opts.NoSep {
			rendered = baseconv.Group(rendered, sep, opts.SepLength)
		}
		if opts.Bare {
			fmt.Fprintln(out, rendered)
		} else {
			fmt.Fprintf(out, "Base %02d: %s\n", target, rendered)
		}
	}
	return nil
}

// separatorRune extracts the single separator rune from the --sep-char
// flag value.
func separatorRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("separator %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// exitCode maps each failure kind to its distinct process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInputBase):
		return 2
	case errors.Is(err, apperrors.ErrBaseConversion):
		return 3
	case errors.Is(err, apperrors.ErrTargetBase):
		return 4
	}
	return 1
}
