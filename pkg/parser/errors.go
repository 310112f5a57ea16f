package parser

import "errors"

// Error kinds returned by Engine.Open. Callers distinguish them with
// errors.Is; the original cause stays in the chain.
var (
	// ErrSourceUnavailable means the named input could not be read.
	ErrSourceUnavailable = errors.New("cannot open file")

	// ErrUnsupportedFormat means no registered parser claims the name.
	ErrUnsupportedFormat = errors.New("no suitable parser found")

	// ErrExtractionFailed means a parser failed while processing the input.
	ErrExtractionFailed = errors.New("failed to parse")
)
