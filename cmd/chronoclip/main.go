package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/alecthomas/kong"
	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/goquery"
	"github.com/is0692vs/ChronoClip-sub000/htmltomarkdown"
	chronohttp "github.com/is0692vs/ChronoClip-sub000/http"
	"github.com/is0692vs/ChronoClip-sub000/ics"
	"github.com/is0692vs/ChronoClip-sub000/readability"
	"github.com/is0692vs/ChronoClip-sub000/scan"
	chronoslog "github.com/is0692vs/ChronoClip-sub000/slog"
	"github.com/is0692vs/ChronoClip-sub000/trafilatura"
	"github.com/is0692vs/ChronoClip-sub000/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chronoclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chronoclip --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.TimeZone = cli.TimeZone

	var settings chronoclip.SettingsSource
	if cli.Rules != "" {
		src, err := yaml.Load(cli.Rules)
		if err != nil {
			return fmt.Errorf("failed to load rules: %w", err)
		}
		settings = src
	}

	registry := goquery.NewDefaultRegistry(settings,
		readability.NewExtractor(),
		trafilatura.NewExtractor(),
	)
	extractor := chronoslog.NewLoggingExtractor(
		goquery.NewExtractor(
			chronoslog.NewLoggingRegistry(registry, deps.Logger),
			goquery.WithTimeZone(cli.TimeZone),
		),
		deps.Logger,
	)

	deps.Extractor = extractor
	deps.Scanner = &scan.Scanner{Extractor: extractor}
	deps.Fetcher = chronoslog.NewLoggingFetcher(
		chronohttp.NewFetcher(chronohttp.WithRateLimit(1.0)),
		deps.Logger,
	)
	defer deps.Fetcher.Close()

	deps.Converter = htmltomarkdown.NewConverter()
	deps.Calendar = ics.NewWriter()

	return kongCtx.Run(deps)
}

// loadPage returns page markup for a source that is either an HTTP URL
// or a local file path.
func loadPage(deps *Dependencies, source string) (string, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return deps.Fetcher.Fetch(deps.Ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", chronoclip.Errorf(chronoclip.EINVALID, "source %q is neither a readable file nor an HTTP URL", source)
	}
	return string(data), nil
}
