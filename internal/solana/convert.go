// Package solana converts key service responses into Ed25519 keypairs.
package solana

import (
	"github.com/cockroachdb/errors"

	"github.com/quantumauth-io/quantum-auth-keys/internal/keyresponse"
	"github.com/quantumauth-io/quantum-auth-keys/internal/seed"
)

const (
	fnToKeypair       = "toKeypair"
	fnToKeypairSecure = "toKeypairSecure"
)

type Converter struct {
	deriver *seed.Deriver
}

func NewConverter(opts ...seed.Option) *Converter {
	return &Converter{deriver: seed.NewDeriver(opts...)}
}

var defaultConverter = NewConverter()

// ToKeypair builds a keypair from the raw key material.
//
// Deprecated: raw TLS key bytes are not a safe seed. Use ToKeypairSecure.
func (c *Converter) ToKeypair(resp keyresponse.KeyResponse) (*Keypair, error) {
	s, err := c.deriver.Legacy(fnToKeypair, resp)
	if err != nil {
		return nil, err
	}
	return keypair(fnToKeypair, s)
}

// ToKeypairSecure builds a keypair from SHA-256 of a TLS key, or from a
// derived key unchanged.
func (c *Converter) ToKeypairSecure(resp keyresponse.KeyResponse) (*Keypair, error) {
	s, err := c.deriver.Secure(fnToKeypairSecure, resp)
	if err != nil {
		return nil, err
	}
	return keypair(fnToKeypairSecure, s)
}

// ToKeypair uses the process logger for warnings.
//
// Deprecated: use ToKeypairSecure.
func ToKeypair(resp keyresponse.KeyResponse) (*Keypair, error) {
	return defaultConverter.ToKeypair(resp)
}

func ToKeypairSecure(resp keyresponse.KeyResponse) (*Keypair, error) {
	return defaultConverter.ToKeypairSecure(resp)
}

func keypair(fn string, s []byte) (*Keypair, error) {
	kp, err := KeypairFromSeed(s)
	if err != nil {
		return nil, errors.Wrap(err, fn)
	}
	return kp, nil
}
