package evm

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/quantumauth-io/quantum-auth-keys/internal/constants"
)

// Account is a secp256k1 account backed by an in-memory private key.
type Account struct {
	// Source is always "privateKey".
	Source  string
	address common.Address
	key     *ecdsa.PrivateKey
}

// AccountFromPrivateKey builds an account from a 32-byte private key.
func AccountFromPrivateKey(b []byte) (*Account, error) {
	key, err := crypto.ToECDSA(b)
	if err != nil {
		return nil, errors.Wrap(err, "to ecdsa")
	}
	return &Account{
		Source:  constants.PrivateKeySource,
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}, nil
}

// AccountFromPrivateKeyHex accepts the key with or without a 0x prefix.
func AccountFromPrivateKeyHex(s string) (*Account, error) {
	b, err := hexutil.Decode(NormalizeHex0x(s))
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	return AccountFromPrivateKey(b)
}

func (a *Account) Address() common.Address {
	return a.address
}

func (a *Account) PublicKey() *ecdsa.PublicKey {
	return &a.key.PublicKey
}

// PrivateKeyHex is the 0x-prefixed private key.
func (a *Account) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(a.key))
}

// Sign signs a 32-byte digest. The recovery byte is 27 or 28.
func (a *Account) Sign(digest32 []byte) ([]byte, error) {
	if err := EnsureDigest32(digest32); err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest32, a.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return SigToV27(sig)
}

// SignMessage signs msg as an EIP-191 personal message.
func (a *Account) SignMessage(msg []byte) ([]byte, error) {
	return a.Sign(accounts.TextHash(msg))
}

func (a *Account) SignTransaction(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if chainID == nil {
		return nil, errors.New("chain id is nil")
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), a.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign tx")
	}
	return signed, nil
}
