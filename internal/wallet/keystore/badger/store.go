// Package badger keeps password-protected ML-DSA private keys in a Badger database.
package badger

import (
	"bytes"
	"context"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
)

var (
	// ErrKeyNotFound is returned when no key is stored under the alias.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyExists is returned when the alias is already taken.
	ErrKeyExists = errors.New("key already exists")
	// ErrWrongPassword is returned when the record cannot be decrypted with the password.
	ErrWrongPassword = errors.New("wrong password")
	// ErrKeyMismatch is returned when the public key is not derived from the private key.
	ErrKeyMismatch = errors.New("public key does not match private key")
	// ErrCorruptRecord is returned for a stored record with out-of-range parameters.
	ErrCorruptRecord = errors.New("corrupt key record")
)

const (
	recordVersion = 1
	saltSize      = 16
	keyPrefix     = "key/"

	// DefaultScryptN is the scrypt CPU/memory cost used when Config leaves it unset.
	DefaultScryptN = 1 << 15
	// MaxScryptN bounds the cost accepted from Config and from stored records.
	MaxScryptN = 1 << 20
)

// Config configures a Store.
type Config struct {
	// Dir is the database directory. Empty keeps everything in memory.
	Dir string
	// ScryptN is the scrypt cost for new records, a power of two up to MaxScryptN.
	ScryptN int
}

type record struct {
	_          struct{} `cbor:",toarray"`
	Version    int
	PublicKey  []byte
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	ScryptN    int
}

// Store is safe for concurrent use.
type Store struct {
	db      *badger.DB
	scryptN int
	logger  *zap.Logger
}

type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}

// New opens the keystore at cfg.Dir, or an in-memory one when Dir is empty.
func New(cfg Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		return nil, errors.New("keystore logger is required")
	}
	if cfg.ScryptN == 0 {
		cfg.ScryptN = DefaultScryptN
	}
	if !validScryptN(cfg.ScryptN) {
		return nil, fmt.Errorf("scrypt cost %d must be a power of two in [2, %d]", cfg.ScryptN, MaxScryptN)
	}
	logger = logger.Named("keystore")

	opts := badger.DefaultOptions(cfg.Dir).
		WithLogger(badgerLogger{logger.Sugar()}).
		WithLoggingLevel(badger.WARNING)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open keystore: %w", err)
	}

	return &Store{db: db, scryptN: cfg.ScryptN, logger: logger}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// WritePrivateKey encrypts the key pair with a key derived from password and stores it under alias.
func (s *Store) WritePrivateKey(ctx context.Context, keyPair *crypto.KeyPair, alias string, password []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if alias == "" {
		return errors.New("key alias is required")
	}
	if keyPair == nil || len(keyPair.PrivateKey) == 0 {
		return errors.New("key pair is required")
	}
	derived, err := crypto.PublicKeyOf(keyPair.PrivateKey)
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}
	if !bytes.Equal(derived, keyPair.PublicKey) {
		return fmt.Errorf("alias %q: %w", alias, ErrKeyMismatch)
	}

	rec := record{
		Version:   recordVersion,
		PublicKey: keyPair.PublicKey,
		Salt:      make([]byte, saltSize),
		Nonce:     make([]byte, chacha20poly1305.NonceSizeX),
		ScryptN:   s.scryptN,
	}
	if _, err := rand.Read(rec.Salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	if _, err := rand.Read(rec.Nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newAEAD(password, rec.Salt, rec.ScryptN)
	if err != nil {
		return err
	}
	rec.Ciphertext = aead.Seal(nil, rec.Nonce, keyPair.PrivateKey, additionalData(alias, rec.PublicKey))

	value, err := cbor.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode key record: %w", err)
	}

	key := []byte(keyPrefix + alias)
	err = s.db.Update(func(txn *badger.Txn) error {
		_, getErr := txn.Get(key)
		switch {
		case getErr == nil:
			return fmt.Errorf("alias %q: %w", alias, ErrKeyExists)
		case !errors.Is(getErr, badger.ErrKeyNotFound):
			return getErr
		}
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("store key: %w", err)
	}

	s.logger.Info("stored private key", zap.String("alias", alias))
	return nil
}

// ReadPrivateKey decrypts the key pair stored under alias.
func (s *Store) ReadPrivateKey(ctx context.Context, alias string, password []byte) (*crypto.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + alias))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("alias %q: %w", alias, ErrKeyNotFound)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load key: %w", err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("key record version %d is not supported", rec.Version)
	}
	if !validScryptN(rec.ScryptN) {
		return nil, fmt.Errorf("alias %q: scrypt cost %d: %w", alias, rec.ScryptN, ErrCorruptRecord)
	}

	aead, err := newAEAD(password, rec.Salt, rec.ScryptN)
	if err != nil {
		return nil, err
	}
	privateKey, err := aead.Open(nil, rec.Nonce, rec.Ciphertext, additionalData(alias, rec.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("alias %q: %w", alias, ErrWrongPassword)
	}

	return &crypto.KeyPair{PublicKey: rec.PublicKey, PrivateKey: privateKey}, nil
}

func validScryptN(n int) bool {
	return n > 1 && n <= MaxScryptN && n&(n-1) == 0
}

func newAEAD(password, salt []byte, n int) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, n, 8, 1, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return aead, nil
}

func additionalData(alias string, publicKey []byte) []byte {
	ad := make([]byte, 0, len(alias)+len(publicKey))
	ad = append(ad, alias...)
	return append(ad, publicKey...)
}
