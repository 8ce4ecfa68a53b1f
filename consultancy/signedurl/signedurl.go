package signedurl

import (
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

// Entry is a cached, time-limited retrieval URL for one storage key. The
// key is the natural identity; regeneration overwrites the entry in place.
type Entry struct {
	Key       kernel.StorageKey `json:"key"`
	URL       string            `json:"url"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// Usable reports whether the entry may still be served. Expiry is checked
// strictly: an entry expiring exactly now must be regenerated.
func (e *Entry) Usable(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
