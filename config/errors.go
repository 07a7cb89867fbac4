package config

import "errors"

// Source-local failures reported (and then swallowed) during chain
// resolution. Both cause the offending source to be skipped; neither is
// fatal to the chain.
var (
	// ErrSourceUnavailable indicates a source file that is missing or
	// unreadable (not found, permission denied, I/O failure).
	ErrSourceUnavailable = errors.New("configuration source unavailable")
	// ErrDecodeFailure indicates a source whose content was read but failed
	// to decode into the optional shape (malformed syntax or a value that
	// does not coerce to the declared field type). The whole source is
	// rejected, never individual fields.
	ErrDecodeFailure = errors.New("configuration source failed to decode")
)
