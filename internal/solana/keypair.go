package solana

import (
	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/cockroachdb/errors"
	"github.com/mr-tron/base58"
)

var ErrInvalidSeedLength = errors.Newf("ed25519 seed must be %d bytes", ed25519.SeedSize)

// Keypair is an Ed25519 keypair. SecretKey is the 64-byte seed||public form.
type Keypair struct {
	PublicKey ed25519.PublicKey
	SecretKey ed25519.PrivateKey
}

// KeypairFromSeed builds the keypair for a 32-byte seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d", len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return &Keypair{PublicKey: pub, SecretKey: priv}, nil
}

// Address is the base58 public key.
func (k *Keypair) Address() string {
	return base58.Encode(k.PublicKey)
}

func (k *Keypair) Seed() []byte {
	return k.SecretKey.Seed()
}

func (k *Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.SecretKey, msg)
}

func (k *Keypair) Verify(msg, sig []byte) bool {
	return ed25519.Verify(k.PublicKey, msg, sig)
}
