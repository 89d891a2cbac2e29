// Package cache stores translation results keyed by language pair and
// text.
package cache

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
)

var ErrCacheMiss = errors.New("cache miss")

// Entry is a cached translation result.
type Entry struct {
	Translation string  `json:"translation"`
	Method      string  `json:"method"`
	Confidence  float64 `json:"confidence"`
	// TriedMethods lists the methods attempted before Method succeeded.
	TriedMethods []string `json:"tried_methods,omitempty"`
}

// Cache is a translation result store. Get returns ErrCacheMiss for
// unknown keys.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, entry Entry) error
	// Flush drops every cached result, e.g. after a dictionary change.
	Flush(ctx context.Context) error
}

// Key derives the cache key of a translation request. The generation
// identifies the dictionary the result was computed on, so results of
// an older dictionary are never served after a reload, even when they
// are stored after the cache was flushed.
func Key(generation uint64, source, target, text string) string {
	h := sha1.New()
	fmt.Fprintf(h, "%d", generation)
	h.Write([]byte{0})
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(target))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return fmt.Sprintf("%s%x", keyPrefix, h.Sum(nil))
}

const keyPrefix = "yuwe:cache:"
