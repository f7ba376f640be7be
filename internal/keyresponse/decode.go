package keyresponse

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const pemPrefix = "-----BEGIN"

type getKeyResponseJSON struct {
	Key            string   `json:"key"`
	SignatureChain []string `json:"signature_chain"`
}

type tlsKeyResponseJSON struct {
	Key              string   `json:"key"`
	CertificateChain []string `json:"certificate_chain"`
}

// DecodeGetKeyResponse parses the JSON body of a getKey call.
func DecodeGetKeyResponse(data []byte) (*DerivedKeyResponse, error) {
	var raw getKeyResponseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal get key response")
	}
	if strings.TrimSpace(raw.Key) == "" {
		return nil, errors.New("get key response: empty key")
	}

	key, err := decodeHex(raw.Key)
	if err != nil {
		return nil, errors.Wrap(err, "get key response: key")
	}

	chain := make([][]byte, 0, len(raw.SignatureChain))
	for i, s := range raw.SignatureChain {
		sig, err := decodeHex(s)
		if err != nil {
			return nil, errors.Wrapf(err, "get key response: signature_chain[%d]", i)
		}
		chain = append(chain, sig)
	}

	return &DerivedKeyResponse{Key: key, SignatureChain: chain}, nil
}

// DecodeTLSKeyResponse parses the JSON body of a deriveKey or getTlsKey call.
func DecodeTLSKeyResponse(data []byte) (*TLSKeyResponse, error) {
	var raw tlsKeyResponseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal tls key response")
	}
	resp := &TLSKeyResponse{Key: raw.Key, CertificateChain: raw.CertificateChain}
	if _, err := resp.AsBytes(0); err != nil {
		return nil, errors.Wrap(err, "tls key response")
	}
	return resp, nil
}

// Decode picks the response shape from the key encoding: a PEM key is a TLS
// response, anything else is a derived hex key.
func Decode(data []byte) (KeyResponse, error) {
	var probe struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "unmarshal key response")
	}
	if strings.HasPrefix(strings.TrimSpace(probe.Key), pemPrefix) {
		return DecodeTLSKeyResponse(data)
	}
	return DecodeGetKeyResponse(data)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	} else {
		s = "0x" + s[2:]
	}
	return hexutil.Decode(s)
}
