// Package store provides the persistent key/value substrate of the tracker.
// Every piece of durable state (meals list, each goal, selected date) lives
// under its own string key and is read and written independently.
package store

import "errors"

// ErrQuotaExceeded reports a write rejected because the store is full. The
// session surfaces it to the user as a warning; the in-memory state stays the
// source of truth.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a string-keyed persistent key/value store. It is the only
// component touching the external substrate.
type Store interface {
	// Get returns the value stored under key, and whether the key exists.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	// Close releases the underlying substrate.
	Close() error
}
