package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/smartrandom"
	"github.com/dmitrymomot/smartrandom/pkg/logger"
	"github.com/dmitrymomot/smartrandom/pkg/qrcode"
)

var (
	errUsage         = errors.New("usage: smartrandom [flags] <kind>")
	errUnknownKind   = errors.New("unknown kind")
	errUnknownFormat = errors.New("unknown output format")
	errInvalidCount  = errors.New("count must be at least 1")
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type options struct {
	Kind   string
	Length int
	Count  int
	Seed   string
	Text   string
	Format string
	QRPath string
	QRSize int
}

type producer func(rnd *smartrandom.Random, o options) (string, error)

var kinds = map[string]producer{
	"letters": func(rnd *smartrandom.Random, o options) (string, error) { return rnd.Letters(o.Length) },
	"digits":  func(rnd *smartrandom.Random, o options) (string, error) { return rnd.Digits(o.Length) },
	"symbols": func(rnd *smartrandom.Random, o options) (string, error) { return rnd.Symbols(o.Length) },
	"code":    func(rnd *smartrandom.Random, o options) (string, error) { return rnd.SecretCode(o.Length) },
	"password": func(rnd *smartrandom.Random, o options) (string, error) {
		return rnd.Password(o.Length)
	},
	"base-password": func(rnd *smartrandom.Random, o options) (string, error) {
		return rnd.BasePassword(o.Length)
	},
	"smart-password": func(rnd *smartrandom.Random, o options) (string, error) {
		return rnd.SmartPassword(o.Seed, o.Length)
	},
	"bytes": func(rnd *smartrandom.Random, o options) (string, error) { return rnd.HexString(o.Length) },
	"uuid":  func(rnd *smartrandom.Random, _ options) (string, error) { return rnd.UUID() },
	"hash":  func(rnd *smartrandom.Random, o options) (string, error) { return rnd.Hash(o.Text), nil },
	"text":  func(rnd *smartrandom.Random, o options) (string, error) { return rnd.RandomizeText(o.Text) },
}

// textKinds read their input from -text or stdin.
var textKinds = []string{"hash", "text"}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func parseArgs(fs *flag.FlagSet, args []string, cfg Config) (options, error) {
	cfg = cfg.withDefaults()
	opts := options{}
	fs.IntVar(&opts.Length, "n", 0, "length of the value, or number of bytes for \"bytes\" (default SMARTRANDOM_LENGTH or SMARTRANDOM_SIZE)")
	fs.IntVar(&opts.Count, "c", cfg.Count, "number of values to generate")
	fs.StringVar(&opts.Seed, "seed", "", "seed phrase for smart-password (empty means random)")
	fs.StringVar(&opts.Text, "text", "", "input for hash and text (default: read stdin)")
	fs.StringVar(&opts.Format, "o", cfg.Format, "output format: text, json or yaml")
	fs.StringVar(&opts.QRPath, "qr", "", "write the first value as a QR code PNG to this path")
	fs.IntVar(&opts.QRSize, "qr-size", cfg.QRSize, "QR code size in pixels")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%v\n\nKinds: %s\n\nFlags:\n", errUsage, strings.Join(kindNames(), ", "))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		return opts, errUsage
	}

	opts.Kind = fs.Arg(0)
	if _, ok := kinds[opts.Kind]; !ok {
		return opts, fmt.Errorf("%w %q, expected one of: %s", errUnknownKind, opts.Kind, strings.Join(kindNames(), ", "))
	}
	lengthSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			lengthSet = true
		}
	})
	if !lengthSet {
		opts.Length = cfg.Length
		if opts.Kind == "bytes" {
			opts.Length = cfg.Size
		}
	}
	if opts.Count < 1 {
		return opts, errInvalidCount
	}
	switch opts.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return opts, fmt.Errorf("%w %q", errUnknownFormat, opts.Format)
	}
	return opts, nil
}

type result struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Values []string `json:"values" yaml:"values"`
}

func run(ctx context.Context, opts options, rnd *smartrandom.Random, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	produce, ok := kinds[opts.Kind]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownKind, opts.Kind)
	}

	if opts.Text == "" && slices.Contains(textKinds, opts.Kind) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		opts.Text = strings.TrimSuffix(string(data), "\n")
	}

	res := result{Kind: opts.Kind, Values: make([]string, 0, opts.Count)}
	for range opts.Count {
		v, err := produce(rnd, opts)
		if err != nil {
			return err
		}
		res.Values = append(res.Values, v)
	}
	log.DebugContext(ctx, "values generated", logger.Generator(opts.Kind), logger.Length(opts.Length), logger.Count(opts.Count))

	if opts.QRPath != "" {
		if err := qrcode.WriteFile(opts.QRPath, res.Values[0], opts.QRSize); err != nil {
			return err
		}
		log.InfoContext(ctx, "qr code written", slog.String("path", opts.QRPath))
	}

	return write(stdout, opts.Format, res)
}

func write(w io.Writer, format string, res result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, v := range res.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}
