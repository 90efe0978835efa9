package scan

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fingerprint computes a dedup key for block text using xxhash.
func fingerprint(text string) string {
	h := xxhash.Sum64String(text)
	return fmt.Sprintf("%016x", h)
}
