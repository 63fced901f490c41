package cryptography

import (
	"io"
	"fmt"
	"runtime"
	"strings"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// chacha20poly1305 encryption+authentication
func Encrypt( data, key []byte ) ([]byte, error) {

	if data == nil || len(data) == 0 {
		return nil, nil
	}
	if key == nil || len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}

	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := make( []byte, chacha20poly1305.NonceSize )
	if _, err := rand.Read( nonce ); err != nil {
		return nil, err
	}

	ct := aead.Seal( nil, nonce, data, nil )
	return append( nonce, ct... ), nil
}

func Decrypt( data, key []byte ) ([]byte, error) {

	if data == nil || len(data) == 0 {
		return nil, nil
	}
	if key == nil || len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	if len(data) < chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("Invalid length of data")
	}

	nonce := data[ :chacha20poly1305.NonceSize ]
	data = data[ chacha20poly1305.NonceSize: ]
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	return aead.Open( nil, nonce, data, nil )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("GenRandom: Invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

// format: <base64-encoded-salt>:<password>
func SplitWithSalt( password string ) ([]byte, []byte, error) {
	parts := strings.Split( password, ":" )
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("no salt supplied")
	} else if len(parts) > 2 {
		// consider the first ':' is a delimeter
		parts[1] = strings.Join( parts[1:], ":" )
	}
	saltBytes, err := base64.StdEncoding.DecodeString( parts[0] )
	if err != nil {
		return nil, nil, err
	}
	return []byte( parts[1] ), saltBytes, nil
}

// derive the master key from a passphrase.
// the draft RFC recommends time=3, and memory=32*1024 (32 MB) is a
// sensible number.
func DeriveKey( password, saltBytes []byte ) []byte {
	threads := uint8( runtime.NumCPU() )
	return argon2.Key( password, saltBytes, 3, 32*1024, threads, SymKeySize )
}

// expand a per-purpose subkey from the master key, so the payload key
// never equals the configuration key.
func DeriveSubkey( master []byte, context string ) []byte {
	kdf := hkdf.New( sha512.New, master, nil, []byte(context) )
	key := make( []byte, SymKeySize )
	if _, err := io.ReadFull( kdf, key ); err != nil {
		return nil
	}
	return key
}
