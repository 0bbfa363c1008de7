// Package wallet manages key pairs and builds signed transfers from unspent outputs.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// ErrKeyMismatch is returned when a stored private key does not sign for its public key.
var ErrKeyMismatch = errors.New("stored key pair does not match")

// TransferRequest describes a payment from the key stored under Alias.
type TransferRequest struct {
	Alias     string
	Password  []byte
	Recipient model.Address
	Amount    model.Coin
	Fee       model.Coin
}

// Service builds transfers for keys held in the keystore.
type Service struct {
	keys         KeyStore
	ledger       Ledger
	reservations Reservations
	logger       *zap.Logger
	now          func() time.Time
}

// New builds a Service; every dependency is required.
func New(keys KeyStore, ledger Ledger, reservations Reservations, logger *zap.Logger) (*Service, error) {
	if keys == nil {
		return nil, errors.New("wallet keystore is required")
	}
	if ledger == nil {
		return nil, errors.New("wallet ledger is required")
	}
	if reservations == nil {
		return nil, errors.New("wallet reservations is required")
	}
	if logger == nil {
		return nil, errors.New("wallet logger is required")
	}

	return &Service{
		keys:         keys,
		ledger:       ledger,
		reservations: reservations,
		logger:       logger.Named("wallet"),
		now:          time.Now,
	}, nil
}

// GenerateKeyPair creates a key pair, stores it under alias and returns its address.
func (s *Service) GenerateKeyPair(ctx context.Context, alias string, password []byte) (model.Address, error) {
	keyPair, err := crypto.GenerateKeyPair()
	if err != nil {
		return "", err
	}
	if err := s.keys.WritePrivateKey(ctx, keyPair, alias, password); err != nil {
		return "", fmt.Errorf("store key pair: %w", err)
	}

	address := model.AddressFromPublicKey(keyPair.PublicKey)
	s.logger.Info("generated key pair", zap.String("alias", alias), zap.String("address", address.String()))
	return address, nil
}

// Balance sums the unspent outputs of address.
func (s *Service) Balance(ctx context.Context, address model.Address) (model.Coin, error) {
	utxos, err := s.ledger.UnspentUtxosByAddress(ctx, address)
	if err != nil {
		return model.Coin{}, fmt.Errorf("list unspent outputs: %w", err)
	}
	return model.SumAmounts(utxos)
}

// CreateTransfer selects unreserved unspent outputs of the sender oldest first until they
// cover amount plus fee, then builds and signs the transfer. The result is INITIALISED and
// ready for submission.
func (s *Service) CreateTransfer(ctx context.Context, req TransferRequest) (*model.Transaction, error) {
	keyPair, err := s.keys.ReadPrivateKey(ctx, req.Alias, req.Password)
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", req.Alias, err)
	}
	sender := model.AddressFromPublicKey(keyPair.PublicKey)

	required, err := req.Amount.Add(req.Fee)
	if err != nil {
		return nil, fmt.Errorf("amount plus fee: %w", err)
	}

	createdAt := s.now().UTC().Truncate(time.Millisecond)
	inputs, err := s.selectInputs(ctx, sender, required, createdAt)
	if err != nil {
		return nil, err
	}

	tx, err := model.NewTransfer(sender, req.Recipient, keyPair.PublicKey, req.Amount, req.Fee, inputs, createdAt)
	if err != nil {
		return nil, fmt.Errorf("build transfer: %w", err)
	}
	if err := Sign(tx, keyPair.PrivateKey); err != nil {
		return nil, err
	}
	ok, err := Verify(tx)
	if err != nil {
		return nil, fmt.Errorf("verify transfer %s: %w", tx.Hash, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrKeyMismatch, req.Alias)
	}

	s.logger.Info("created transfer",
		zap.String("hash", tx.Hash.String()),
		zap.String("sender", sender.String()),
		zap.String("recipient", req.Recipient.String()),
		zap.Int("inputs", len(inputs)),
	)
	return tx, nil
}

func (s *Service) selectInputs(ctx context.Context, sender model.Address, required model.Coin, createdAt time.Time) ([]model.Utxo, error) {
	candidates, err := s.ledger.UnspentUtxosByAddress(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("list unspent outputs: %w", err)
	}

	selected := make([]model.Utxo, 0, len(candidates))
	total := model.ZeroCoin
	for _, utxo := range candidates {
		if total.Cmp(required) >= 0 {
			break
		}
		if utxo.Spent || !utxo.CreatedAt.Before(createdAt) {
			continue
		}
		if _, reserved := s.reservations.ReservedBy(utxo.ID); reserved {
			continue
		}
		if total, err = total.Add(utxo.Amount); err != nil {
			return nil, fmt.Errorf("sum inputs: %w", err)
		}
		selected = append(selected, utxo)
	}

	if total.Cmp(required) < 0 {
		return nil, fmt.Errorf("%w: %s has %s spendable, need %s", model.ErrInsufficientFunds, sender, total, required)
	}
	return selected, nil
}

// Sign signs the transaction hash with an ML-DSA private key.
func Sign(tx *model.Transaction, privateKey []byte) error {
	msg, err := tx.HashBytes()
	if err != nil {
		return fmt.Errorf("transaction hash: %w", err)
	}
	sig, err := crypto.Sign(privateKey, msg)
	if err != nil {
		return fmt.Errorf("sign transaction %s: %w", tx.Hash, err)
	}
	tx.Signature = sig
	return nil
}

// Verify checks the transaction signature against its embedded public key.
func Verify(tx *model.Transaction) (bool, error) {
	msg, err := tx.HashBytes()
	if err != nil {
		return false, fmt.Errorf("transaction hash: %w", err)
	}
	return crypto.Verify(tx.SenderPublicKey, msg, tx.Signature)
}
