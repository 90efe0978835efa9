package mock

import chronoclip "github.com/is0692vs/ChronoClip-sub000"

var _ chronoclip.Converter = (*Converter)(nil)

// Converter is a mock implementation of chronoclip.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
