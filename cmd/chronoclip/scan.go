package main

import (
	"encoding/json"
	"fmt"
	"os"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/goquery"
	"github.com/is0692vs/ChronoClip-sub000/scan"
)

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Source      string `arg:"" help:"Page URL or local HTML file"`
	Ref         string `help:"Reference date for relative and year-less expressions (YYYY-MM-DD)"`
	ICS         string `name:"ics" help:"Write dated events to an iCalendar file" type:"path"`
	JSON        bool   `help:"Emit the scan result as JSON"`
	Concurrency int    `short:"c" default:"8" help:"Number of blocks extracted concurrently"`
}

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	html, err := loadPage(deps, c.Source)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", c.Source, err)
	}

	doc, err := goquery.NewDocument(html)
	if err != nil {
		return err
	}

	ref, err := parseRef(c.Ref)
	if err != nil {
		return err
	}

	scanner := deps.Scanner
	scanner.Concurrency = c.Concurrency
	result, err := scanner.ScanDocument(deps.Ctx, doc, scan.Request{
		Domain:   hostOf(c.Source),
		URL:      c.Source,
		Ref:      ref,
		TimeZone: deps.TimeZone,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		c.printScan(deps, result)
	}

	if c.ICS != "" {
		return c.writeCalendar(deps, result)
	}
	return nil
}

// printScan writes a human-readable listing of scanned events.
func (c *ScanCmd) printScan(deps *Dependencies, result *scan.Result) {
	fmt.Fprintf(deps.Stdout, "%d blocks scanned, %d duplicates skipped, %d events found\n",
		result.Blocks, result.Deduplicated, len(result.Events))
	for _, ev := range result.Events {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintf(deps.Stdout, "[%d] %s\n", ev.Position, ev.Span.Text)
		printResult(deps, ev.Result)
	}
}

// writeCalendar serializes the dated events to an iCalendar file.
func (c *ScanCmd) writeCalendar(deps *Dependencies, result *scan.Result) error {
	results := make([]*chronoclip.ExtractionResult, 0, len(result.Events))
	for _, ev := range result.Events {
		results = append(results, ev.Result)
	}
	cal, err := deps.Calendar.Calendar(results)
	if err != nil {
		return fmt.Errorf("calendar export: %w", err)
	}
	if err := os.WriteFile(c.ICS, []byte(cal), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.ICS, err)
	}
	fmt.Fprintf(deps.Stdout, "wrote %s\n", c.ICS)
	return nil
}
