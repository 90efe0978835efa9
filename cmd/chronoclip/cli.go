package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/ics"
	"github.com/is0692vs/ChronoClip-sub000/scan"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	TimeZone string

	Fetcher   chronoclip.Fetcher
	Extractor chronoclip.ContextExtractor
	Scanner   *scan.Scanner
	Converter chronoclip.Converter
	Calendar  *ics.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Rules    string `help:"Path to a per-site rules YAML file" type:"path"`
	TimeZone string `name:"timezone" default:"Asia/Tokyo" help:"IANA time zone for timed results"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Detect  DetectCmd  `cmd:"" help:"Detect temporal expressions in text"`
	Extract ExtractCmd `cmd:"" help:"Extract event context from a page"`
	Scan    ScanCmd    `cmd:"" help:"Scan a whole page for dated events"`
	List    RulesCmd   `cmd:"" name:"rules" help:"Inspect a per-site rules file"`
}

// parseRef parses a reference instant from a command flag. An empty
// value means the current time.
func parseRef(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, chronoclip.Errorf(chronoclip.EINVALID, "invalid reference date %q (want YYYY-MM-DD)", value)
}
