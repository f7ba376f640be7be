package seed_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/pem"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-auth-keys/internal/keyresponse"
	"github.com/quantumauth-io/quantum-auth-keys/internal/seed"
	"github.com/quantumauth-io/quantum-auth-keys/internal/seed/seedtest"
)

func tlsResponse(der []byte) *keyresponse.TLSKeyResponse {
	return &keyresponse.TLSKeyResponse{
		Key: string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
	}
}

func body64() []byte {
	return append(bytes.Repeat([]byte{0x01}, 32), bytes.Repeat([]byte{0x02}, 32)...)
}

func TestLegacy_TLSUsesFirst32Bytes(t *testing.T) {
	rec := &seedtest.Recorder{}
	d := seed.NewDeriver(seed.WithWarner(rec))

	got, err := d.Legacy("toKeypair", tlsResponse(body64()))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), got)

	require.Len(t, rec.Messages(), 1)
	assert.Equal(t, "toKeypair: Please don't use `deriveKey` method to get key, use `getKey` instead.", rec.Messages()[0])
}

func TestSecure_TLSHashesWholeKey(t *testing.T) {
	rec := &seedtest.Recorder{}
	d := seed.NewDeriver(seed.WithWarner(rec))

	got, err := d.Secure("toKeypairSecure", tlsResponse(body64()))
	require.NoError(t, err)

	want := sha256.Sum256(body64())
	assert.Equal(t, want[:], got)
	require.Len(t, rec.Messages(), 1)
	assert.Contains(t, rec.Messages()[0], "toKeypairSecure: ")
}

func TestDerived_NoWarningNoHash(t *testing.T) {
	rec := &seedtest.Recorder{}
	d := seed.NewDeriver(seed.WithWarner(rec), seed.WithHash(seedtest.NoHash))
	key := bytes.Repeat([]byte{0x42}, 32)
	resp := &keyresponse.DerivedKeyResponse{Key: key}

	legacy, err := d.Legacy("a", resp)
	require.NoError(t, err)
	secure, err := d.Secure("b", resp)
	require.NoError(t, err)

	assert.Equal(t, key, legacy)
	assert.Equal(t, key, secure)
	assert.Empty(t, rec.Messages())
}

func TestSecure_MissingSHA256(t *testing.T) {
	rec := &seedtest.Recorder{}
	d := seed.NewDeriver(seed.WithWarner(rec), seed.WithHash(seedtest.NoHash))

	_, err := d.Secure("toViemAccountSecure", tlsResponse(body64()))
	require.ErrorIs(t, err, seed.ErrMissingSHA256)
	assert.Contains(t, err.Error(), "toViemAccountSecure: missing sha256 support")

	legacy, err := d.Legacy("toViemAccount", tlsResponse(body64()))
	require.NoError(t, err)
	assert.Len(t, legacy, seed.Size)
}

func TestSecure_DependsOnBytesPast32(t *testing.T) {
	d := seed.NewDeriver(seed.WithWarner(&seedtest.Recorder{}))
	a := body64()
	b := body64()
	b[63] ^= 0xff

	sa, err := d.Secure("f", tlsResponse(a))
	require.NoError(t, err)
	sb, err := d.Secure("f", tlsResponse(b))
	require.NoError(t, err)
	assert.NotEqual(t, sa, sb)

	la, err := d.Legacy("f", tlsResponse(a))
	require.NoError(t, err)
	lb, err := d.Legacy("f", tlsResponse(b))
	require.NoError(t, err)
	assert.Equal(t, la, lb)
}

func TestSecure_MissingSHA256KeepsBackendError(t *testing.T) {
	d := seed.NewDeriver(seed.WithWarner(&seedtest.Recorder{}), seed.WithHash(seedtest.NoHash))

	_, err := d.Secure("toKeypairSecure", tlsResponse(body64()))
	require.ErrorIs(t, err, seed.ErrMissingSHA256)
	assert.Equal(t, "toKeypairSecure: missing sha256 support", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "sha256 not supported")
}

func TestLogWarner_WritesToGivenStream(t *testing.T) {
	var buf bytes.Buffer
	d := seed.NewDeriver(seed.WithWarner(seed.NewLogWarner(&buf)))

	_, err := d.Legacy("toKeypair", tlsResponse(body64()))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "toKeypair: Please don't use `deriveKey` method to get key, use `getKey` instead.")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
