// Package evm converts key service responses into secp256k1 accounts.
package evm

import (
	"github.com/cockroachdb/errors"

	"github.com/quantumauth-io/quantum-auth-keys/internal/keyresponse"
	"github.com/quantumauth-io/quantum-auth-keys/internal/seed"
)

const (
	fnToViemAccount       = "toViemAccount"
	fnToViemAccountSecure = "toViemAccountSecure"
)

type Converter struct {
	deriver *seed.Deriver
}

func NewConverter(opts ...seed.Option) *Converter {
	return &Converter{deriver: seed.NewDeriver(opts...)}
}

var defaultConverter = NewConverter()

// ToAccount uses the first 32 bytes of a TLS key, or a derived key, as the
// private key.
//
// Deprecated: raw TLS key bytes are not a safe private key. Use ToAccountSecure.
func (c *Converter) ToAccount(resp keyresponse.KeyResponse) (*Account, error) {
	s, err := c.deriver.Legacy(fnToViemAccount, resp)
	if err != nil {
		return nil, err
	}
	return account(fnToViemAccount, s)
}

// ToAccountSecure uses SHA-256 of a TLS key, or a derived key unchanged, as
// the private key.
func (c *Converter) ToAccountSecure(resp keyresponse.KeyResponse) (*Account, error) {
	s, err := c.deriver.Secure(fnToViemAccountSecure, resp)
	if err != nil {
		return nil, err
	}
	return account(fnToViemAccountSecure, s)
}

// Deprecated: use ToAccountSecure.
func ToAccount(resp keyresponse.KeyResponse) (*Account, error) {
	return defaultConverter.ToAccount(resp)
}

func ToAccountSecure(resp keyresponse.KeyResponse) (*Account, error) {
	return defaultConverter.ToAccountSecure(resp)
}

func account(fn string, s []byte) (*Account, error) {
	acc, err := AccountFromPrivateKey(s)
	if err != nil {
		return nil, errors.Wrap(err, fn)
	}
	return acc, nil
}
