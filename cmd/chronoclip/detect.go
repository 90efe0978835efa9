package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/is0692vs/ChronoClip-sub000/detect"
)

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	Text string `arg:"" optional:"" help:"Text to scan; reads stdin when omitted"`
	Ref  string `help:"Reference date for relative and year-less expressions (YYYY-MM-DD)"`
	JSON bool   `help:"Emit spans as JSON"`
}

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	ref, err := parseRef(c.Ref)
	if err != nil {
		return err
	}

	spans := detect.DetectSpans(text, ref)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spans)
	}

	if len(spans) == 0 {
		fmt.Fprintln(deps.Stdout, "no temporal expressions found")
		return nil
	}

	for _, s := range spans {
		value := s.Date
		if s.Time != "" {
			if value != "" {
				value += " "
			}
			value += s.Time
			if s.EndTime != "" {
				value += "-" + s.EndTime
			}
		}
		fmt.Fprintf(deps.Stdout, "%4d-%-4d %-12s %-22s %s\n", s.Start, s.End, s.Recognizer, value, s.Text)
	}
	return nil
}
