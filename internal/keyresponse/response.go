// Package keyresponse models the key material returned by the key service.
// A response comes in one of two shapes: the derived key returned by getKey,
// or the raw TLS key returned by the legacy deriveKey/getTlsKey calls.
package keyresponse

import (
	"encoding/pem"

	"github.com/cockroachdb/errors"
	"github.com/quantumauth-io/quantum-auth-keys/internal/constants"
)

var ErrInvalidPEM = errors.New("key is not a PEM block")

type Kind string

const (
	KindDerived Kind = constants.GetKeyResponseName
	KindTLS     Kind = constants.GetTlsKeyResponseName
)

// KeyResponse is implemented only by *DerivedKeyResponse and *TLSKeyResponse.
type KeyResponse interface {
	Kind() Kind
	keyResponse()
}

// DerivedKeyResponse carries key material that was already derived safely
// by the service and can be used as a seed without further processing.
type DerivedKeyResponse struct {
	Key            []byte
	SignatureChain [][]byte
}

func (*DerivedKeyResponse) Kind() Kind { return KindDerived }
func (*DerivedKeyResponse) keyResponse() {}

// TLSKeyResponse carries a PKCS#8 private key in PEM form. Its bytes are raw
// material and are not meant to be used as a seed directly.
type TLSKeyResponse struct {
	Key              string
	CertificateChain []string
}

func (*TLSKeyResponse) Kind() Kind { return KindTLS }
func (*TLSKeyResponse) keyResponse() {}

// AsBytes returns the DER body of the key. When maxLen is positive only the
// first maxLen bytes are returned. Bodies shorter than maxLen are returned
// as-is.
func (r *TLSKeyResponse) AsBytes(maxLen int) ([]byte, error) {
	block, _ := pem.Decode([]byte(r.Key))
	if block == nil {
		return nil, ErrInvalidPEM
	}
	der := block.Bytes
	if maxLen > 0 && len(der) > maxLen {
		der = der[:maxLen]
	}
	return der, nil
}

// Bytes exposes the key bytes of any response. maxLen only applies to TLS
// responses; derived keys are always returned whole.
func Bytes(resp KeyResponse, maxLen int) ([]byte, error) {
	switch r := resp.(type) {
	case *DerivedKeyResponse:
		return r.Key, nil
	case *TLSKeyResponse:
		b, err := r.AsBytes(maxLen)
		if err != nil {
			return nil, errors.Wrap(err, "tls key response")
		}
		return b, nil
	case nil:
		return nil, errors.New("nil key response")
	default:
		return nil, errors.Newf("unknown key response %T", resp)
	}
}
