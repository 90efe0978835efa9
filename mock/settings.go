package mock

import (
	"context"

	chronoclip "github.com/is0692vs/ChronoClip-sub000"
)

var _ chronoclip.SettingsSource = (*SettingsSource)(nil)

// SettingsSource is a mock implementation of chronoclip.SettingsSource.
type SettingsSource struct {
	EffectiveSettingsFn func(ctx context.Context, host string) (*chronoclip.Settings, error)
}

func (s *SettingsSource) EffectiveSettings(ctx context.Context, host string) (*chronoclip.Settings, error) {
	return s.EffectiveSettingsFn(ctx, host)
}
