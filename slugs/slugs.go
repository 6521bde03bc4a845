package slugs

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// Unique derives a URL-safe slug from a product title and probes taken until
// it finds a free candidate: base, base-2, base-3, and so on. A title with no
// usable characters gets a time-based placeholder so the result is never
// empty.
//
// The probe is advisory only; the slug column's unique index is the source of
// truth under concurrent creates, and the caller retries once on a detected
// collision at insert time.
func Unique(title string, taken func(string) bool) string {
	base := slug.Make(title)
	if base == "" {
		base = fmt.Sprintf("product-%d", time.Now().Unix())
	}
	candidate := base
	for counter := 2; taken(candidate); counter++ {
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return candidate
}
