// Package seed turns a key response into the 32 bytes used to build a chain
// account.
//
// The legacy path feeds raw TLS key bytes straight into the account and is
// kept only for callers that already depend on the resulting addresses. The
// secure path hashes the whole TLS key with SHA-256 first. Derived keys from
// getKey are used unchanged on both paths.
package seed

import (
	"hash"

	"github.com/cockroachdb/errors"
	sha256 "github.com/minio/sha256-simd"
	"github.com/quantumauth-io/quantum-auth-keys/internal/constants"
	"github.com/quantumauth-io/quantum-auth-keys/internal/keyresponse"
)

const Size = constants.SeedSize

var ErrMissingSHA256 = errors.New("missing sha256 support")

// HashFunc builds the hash used by the secure path.
type HashFunc func() (hash.Hash, error)

func defaultHash() (hash.Hash, error) {
	return sha256.New(), nil
}

type Option func(*Deriver)

func WithWarner(w Warner) Option {
	return func(d *Deriver) {
		if w != nil {
			d.warn = w
		}
	}
}

func WithHash(f HashFunc) Option {
	return func(d *Deriver) {
		if f != nil {
			d.newHash = f
		}
	}
}

// Deriver is immutable once built and safe for concurrent use.
type Deriver struct {
	warn    Warner
	newHash HashFunc
}

func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{
		warn:    NewLogWarner(nil),
		newHash: defaultHash,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Legacy returns the seed the historical converters used: the first 32 raw
// bytes of a TLS key, or the derived key as-is. fn names the caller in the
// deprecation warning.
func (d *Deriver) Legacy(fn string, resp keyresponse.KeyResponse) ([]byte, error) {
	switch r := resp.(type) {
	case *keyresponse.TLSKeyResponse:
		d.warnDeriveKey(fn)
		b, err := r.AsBytes(Size)
		if err != nil {
			return nil, errors.Wrap(err, fn)
		}
		return b, nil
	default:
		return d.derived(fn, resp)
	}
}

// Secure returns SHA-256 over the entire TLS key, or the derived key as-is.
func (d *Deriver) Secure(fn string, resp keyresponse.KeyResponse) ([]byte, error) {
	switch r := resp.(type) {
	case *keyresponse.TLSKeyResponse:
		d.warnDeriveKey(fn)
		h, err := d.newHash()
		if err != nil || h == nil {
			missing := errors.Wrap(ErrMissingSHA256, fn)
			if err != nil {
				missing = errors.WithSecondaryError(missing, err)
			}
			return nil, missing
		}
		b, err := r.AsBytes(0)
		if err != nil {
			return nil, errors.Wrap(err, fn)
		}
		h.Write(b)
		return h.Sum(nil), nil
	default:
		return d.derived(fn, resp)
	}
}

func (d *Deriver) derived(fn string, resp keyresponse.KeyResponse) ([]byte, error) {
	b, err := keyresponse.Bytes(resp, 0)
	if err != nil {
		return nil, errors.Wrap(err, fn)
	}
	return b, nil
}

func (d *Deriver) warnDeriveKey(fn string) {
	d.warn.Warn(fn+": "+constants.DeriveKeyWarning, "func", fn)
}
