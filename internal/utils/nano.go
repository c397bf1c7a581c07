package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	nanoidSize     = 16
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Stacks style c32 alphabet used for generated principals.
	principalAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	principalPrefix   = "ST"
	principalSize     = 39
)

// NanoID returns a random id for tagging requests in logs.
func NanoID() string {
	return gonanoid.MustGenerate(nanoidAlphabet, nanoidSize)
}

// NewPrincipal returns a random testnet-looking principal identifier.
func NewPrincipal() string {
	return principalPrefix + gonanoid.MustGenerate(principalAlphabet, principalSize)
}
