package cryptography

import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = 32
	NonceSize = chacha20poly1305.NonceSize
	SaltSize = 16
)
