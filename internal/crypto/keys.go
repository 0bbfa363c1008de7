package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// ErrCrypto marks failures of the signature scheme itself (malformed keys, signer errors).
// It is never used to report a signature that simply does not match.
var ErrCrypto = errors.New("crypto failure")

const (
	// PublicKeySize is the packed ML-DSA-87 public key length.
	PublicKeySize = mldsa87.PublicKeySize
	// PrivateKeySize is the packed ML-DSA-87 private key length.
	PrivateKeySize = mldsa87.PrivateKeySize
	// SignatureSize is the ML-DSA-87 signature length.
	SignatureSize = mldsa87.SignatureSize
)

// KeyPair holds packed ML-DSA-87 keys.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeyPair creates a fresh ML-DSA-87 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	pk, sk, err := mldsa87.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: generate key: %v", ErrCrypto, err)
	}

	pub, err := pk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: pack public key: %v", ErrCrypto, err)
	}
	priv, err := sk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: pack private key: %v", ErrCrypto, err)
	}

	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

// PublicKeyOf derives the packed public key from a packed private key.
func PublicKeyOf(privateKey []byte) ([]byte, error) {
	var sk mldsa87.PrivateKey
	if err := sk.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("%w: unpack private key: %v", ErrCrypto, err)
	}

	pk, ok := sk.Public().(*mldsa87.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected public key type %T", ErrCrypto, sk.Public())
	}

	pub, err := pk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: pack public key: %v", ErrCrypto, err)
	}
	return pub, nil
}

// Sign produces a randomized ML-DSA-87 signature over message.
// Every call unpacks its own key so concurrent callers share no state.
func Sign(privateKey, message []byte) ([]byte, error) {
	var sk mldsa87.PrivateKey
	if err := sk.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("%w: unpack private key: %v", ErrCrypto, err)
	}

	signature := make([]byte, mldsa87.SignatureSize)
	if err := mldsa87.SignTo(&sk, message, nil, true, signature); err != nil {
		return nil, fmt.Errorf("%w: sign: %v", ErrCrypto, err)
	}
	return signature, nil
}

// Verify reports whether signature is a valid signature of message under publicKey.
// A malformed public key is an error; a wrong or truncated signature is (false, nil).
func Verify(publicKey, message, signature []byte) (bool, error) {
	var pk mldsa87.PublicKey
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return false, fmt.Errorf("%w: unpack public key: %v", ErrCrypto, err)
	}

	if len(signature) != mldsa87.SignatureSize {
		return false, nil
	}
	return mldsa87.Verify(&pk, message, nil, signature), nil
}
