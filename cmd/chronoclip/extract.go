package main

import (
	"encoding/json"
	"fmt"
	"net/url"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/goquery"
)

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source    string `arg:"" help:"Page URL or local HTML file"`
	Selection string `short:"s" help:"Selected text anchoring the extraction"`
	Ref       string `help:"Reference date for relative and year-less expressions (YYYY-MM-DD)"`
	Markdown  bool   `help:"Also print the page converted to Markdown"`
	JSON      bool   `help:"Emit the result as JSON"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
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

	result := deps.Extractor.Extract(deps.Ctx, &chronoclip.ExtractionContext{
		Domain:        hostOf(c.Source),
		URL:           c.Source,
		Root:          doc,
		HTML:          html,
		SelectionText: c.Selection,
		Ref:           ref,
		TimeZone:      deps.TimeZone,
	})

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printResult(deps, result)
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(html)
		if err != nil {
			return fmt.Errorf("markdown conversion: %w", err)
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, md)
	}
	return nil
}

// printResult writes a human-readable summary of one extraction.
func printResult(deps *Dependencies, r *chronoclip.ExtractionResult) {
	fmt.Fprintf(deps.Stdout, "Title:      %s\n", r.Title)
	if r.DateInfo != nil {
		if r.DateInfo.AllDay() {
			fmt.Fprintf(deps.Stdout, "Date:       %s (all day)\n", r.DateInfo.Start.Date)
		} else {
			fmt.Fprintf(deps.Stdout, "Start:      %s (%s)\n", r.DateInfo.Start.DateTime, r.DateInfo.Start.TimeZone)
			fmt.Fprintf(deps.Stdout, "End:        %s\n", r.DateInfo.End.DateTime)
		}
	}
	if r.Location != "" {
		fmt.Fprintf(deps.Stdout, "Location:   %s\n", r.Location)
	}
	if r.Price != "" {
		fmt.Fprintf(deps.Stdout, "Price:      %s\n", r.Price)
	}
	if r.Description != "" {
		fmt.Fprintf(deps.Stdout, "Description:\n%s\n", r.Description)
	}
	fmt.Fprintf(deps.Stdout, "Strategy:   %s (confidence %.2f)\n", r.Strategy, r.Confidence)
	if r.Fallback {
		fmt.Fprintf(deps.Stdout, "Degraded:   %s\n", r.FallbackError)
	}
}

// hostOf extracts the hostname from a source that may be a URL or a
// file path.
func hostOf(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
