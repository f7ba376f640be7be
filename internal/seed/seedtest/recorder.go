// Package seedtest provides fakes for the seed package.
package seedtest

import (
	"hash"
	"sync"

	"github.com/cockroachdb/errors"
)

// Recorder is a seed.Warner that keeps every message.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Warn(msg string, _ ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// NoHash simulates a runtime without SHA-256.
func NoHash() (hash.Hash, error) {
	return nil, errors.New("sha256 not supported")
}
