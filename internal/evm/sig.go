package evm

import (
	"strings"

	"github.com/cockroachdb/errors"
)

func EnsureDigest32(d []byte) error {
	if len(d) != 32 {
		return errors.Newf("digest must be 32 bytes, got %d", len(d))
	}
	return nil
}

// SigToV27 converts V 0/1 -> 27/28 (some APIs expect this).
// If V is already 27/28, it leaves it unchanged.
func SigToV27(sig65 []byte) ([]byte, error) {
	if len(sig65) != 65 {
		return nil, errors.Newf("signature must be 65 bytes, got %d", len(sig65))
	}
	out := make([]byte, 65)
	copy(out, sig65)

	switch out[64] {
	case 0, 1:
		out[64] += 27
	case 27, 28:
		// ok
	default:
		return nil, errors.Newf("unexpected v value %d", out[64])
	}
	return out, nil
}

// SigToV01 is the inverse of SigToV27, for recovery with go-ethereum.
func SigToV01(sig65 []byte) ([]byte, error) {
	if len(sig65) != 65 {
		return nil, errors.Newf("signature must be 65 bytes, got %d", len(sig65))
	}
	out := make([]byte, 65)
	copy(out, sig65)
	if out[64] >= 27 {
		out[64] -= 27
	}
	if out[64] > 1 {
		return nil, errors.Newf("unexpected v value %d", sig65[64])
	}
	return out, nil
}

func NormalizeHex0x(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
