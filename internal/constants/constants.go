package constants

const (
	AppName    = "quantumauth"
	ConfigFile = "keyconv.yaml"
	EnvPrefix  = "KEYCONV"

	// Discriminants as the key service names its responses.
	GetKeyResponseName    = "GetKeyResponse"
	GetTlsKeyResponseName = "GetTlsKeyResponse"

	SeedSize = 32

	// Source reported by accounts built from a raw private key.
	PrivateKeySource = "privateKey"

	DeriveKeyWarning = "Please don't use `deriveKey` method to get key, use `getKey` instead."
)
