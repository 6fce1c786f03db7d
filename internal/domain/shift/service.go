package shift

// OverrideStore is the durable store of manual day entries, keyed by
// ISO date. It is the only user-mutable state in the system; the feed
// is read-only input. Single-writer: concurrent processes sharing the
// same data directory are not coordinated.
type OverrideStore interface {
	// Load returns the stored entries. Missing or corrupt state
	// degrades to an empty map; it never fails the caller.
	Load() map[string]Day
	// Save replaces the whole stored mapping.
	Save(entries map[string]Day) error
	Put(date string, day Day) error
	Remove(date string) error
	Has(date string) bool
}
