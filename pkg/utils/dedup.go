package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Deduplicator tracks content hashes so identical documents are only
// ingested once, wherever they were found.
type Deduplicator struct {
	mu     sync.Mutex
	hashes map[string]bool
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		hashes: make(map[string]bool),
	}
}

// IsDuplicate checks if hash exists. If not, adds it and returns false.
func (d *Deduplicator) IsDuplicate(hash string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hashes[hash] {
		return true
	}
	d.hashes[hash] = true
	return false
}

// CheckAndAdd hashes text and records it. Returns (true, hash) when the
// same content was seen before.
func (d *Deduplicator) CheckAndAdd(text string) (bool, string) {
	sum := sha256.Sum256([]byte(text))
	hash := hex.EncodeToString(sum[:])
	return d.IsDuplicate(hash), hash
}
