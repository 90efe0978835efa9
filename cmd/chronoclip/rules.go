package main

import (
	"encoding/json"
	"fmt"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"github.com/is0692vs/ChronoClip-sub000/yaml"
)

// RulesCmd is the "rules" subcommand. It inspects a per-site rules
// file without running an extraction.
type RulesCmd struct {
	Path string `arg:"" help:"Path to a rules YAML file" type:"path"`
	Host string `help:"Show the effective rule for a host instead of listing all rules"`
	JSON bool   `help:"Emit rules as JSON"`
}

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	source, err := yaml.Load(c.Path)
	if err != nil {
		return err
	}

	if c.Host != "" {
		settings, err := source.EffectiveSettings(deps.Ctx, c.Host)
		if err != nil {
			return err
		}
		if c.JSON {
			enc := json.NewEncoder(deps.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(settings)
		}
		if settings.Rule == nil {
			fmt.Fprintf(deps.Stdout, "no rule matches %s\n", c.Host)
			return nil
		}
		printRule(deps, *settings.Rule)
		return nil
	}

	rules := source.Rules()
	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}
	if len(rules) == 0 {
		fmt.Fprintln(deps.Stdout, "no rules defined")
		return nil
	}
	for i, rule := range rules {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printRule(deps, rule)
	}
	return nil
}

func printRule(deps *Dependencies, rule chronoclip.ExtractorRule) {
	fmt.Fprintf(deps.Stdout, "Domain:   %s\n", rule.Domain)
	if rule.Strategy != "" {
		fmt.Fprintf(deps.Stdout, "Strategy: %s\n", rule.Strategy)
	}
	if rule.Priority != 0 {
		fmt.Fprintf(deps.Stdout, "Priority: %d\n", rule.Priority)
	}
	selectors := []struct {
		name, value string
	}{
		{"title", rule.TitleSelector},
		{"date", rule.DateSelector},
		{"description", rule.DescriptionSelector},
		{"location", rule.LocationSelector},
		{"price", rule.PriceSelector},
		{"ignore", rule.IgnoreSelector},
	}
	for _, s := range selectors {
		if s.value != "" {
			fmt.Fprintf(deps.Stdout, "  %-12s %s\n", s.name+":", s.value)
		}
	}
}
