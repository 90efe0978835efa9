// Package yaml provides a file-backed settings source for per-site
// extraction rules.
package yaml

import (
	"context"
	"os"
	"strings"
	"sync"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
	"gopkg.in/yaml.v3"
)

// Ensure SettingsSource implements chronoclip.SettingsSource at compile time.
var _ chronoclip.SettingsSource = (*SettingsSource)(nil)

// File is the YAML settings document shape.
type File struct {
	// RulesEnabled toggles per-site rules globally.
	RulesEnabled bool `yaml:"rulesEnabled"`

	// Rules are the per-domain extraction overrides.
	Rules []chronoclip.ExtractorRule `yaml:"rules"`
}

// SettingsSource serves per-host extraction settings from a YAML file
// loaded once at construction. It is safe for concurrent use.
type SettingsSource struct {
	mu   sync.RWMutex
	file File
}

// Load reads and validates a settings file.
func Load(path string) (*SettingsSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chronoclip.Errorf(chronoclip.ENOTFOUND, "failed to read settings file %q: %v", path, err)
	}
	return Parse(data)
}

// Parse builds a settings source from YAML bytes.
func Parse(data []byte) (*SettingsSource, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, chronoclip.Errorf(chronoclip.EINVALID, "failed to parse settings: %v", err)
	}
	for i := range file.Rules {
		if err := file.Rules[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &SettingsSource{file: file}, nil
}

// Replace swaps in a new rule set atomically.
func (s *SettingsSource) Replace(file File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = file
}

// Rules returns a copy of the loaded rules.
func (s *SettingsSource) Rules() []chronoclip.ExtractorRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chronoclip.ExtractorRule, len(s.file.Rules))
	copy(out, s.file.Rules)
	return out
}

// EffectiveSettings returns the settings that apply to the host. The
// best match is the rule whose domain suffix-matches the host; among
// several matches the highest priority wins, then the longest domain.
func (s *SettingsSource) EffectiveSettings(_ context.Context, host string) (*chronoclip.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := &chronoclip.Settings{RulesEnabled: s.file.RulesEnabled}
	if !s.file.RulesEnabled || host == "" {
		return settings, nil
	}

	host = strings.ToLower(host)
	var best *chronoclip.ExtractorRule
	for i := range s.file.Rules {
		rule := &s.file.Rules[i]
		if !domainMatches(host, strings.ToLower(rule.Domain)) {
			continue
		}
		if best == nil || rule.Priority > best.Priority ||
			(rule.Priority == best.Priority && len(rule.Domain) > len(best.Domain)) {
			best = rule
		}
	}

	if best != nil {
		copied := *best
		settings.Rule = &copied
	}
	return settings, nil
}

// domainMatches reports whether a host is covered by a rule domain:
// exact match or a subdomain of it.
func domainMatches(host, domain string) bool {
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
