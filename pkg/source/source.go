// Package source supplies raw bytes for named inputs. The parser engine
// only depends on the ByteSource capability, so documents can come from the
// local filesystem, an SMB share, or anything else that resolves a name to
// bytes.
package source

import "os"

// ByteSource resolves a name to raw bytes or fails with a not-found or
// unreadable error. Implementations must be safe for concurrent reads.
type ByteSource interface {
	Read(name string) ([]byte, error)
}

// Local reads from the local filesystem.
type Local struct{}

func (l *Local) Read(name string) ([]byte, error) {
	return os.ReadFile(name)
}
