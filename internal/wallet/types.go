package wallet

import (
	"context"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	KeyStore interface {
		WritePrivateKey(ctx context.Context, keyPair *crypto.KeyPair, alias string, password []byte) error
		ReadPrivateKey(ctx context.Context, alias string, password []byte) (*crypto.KeyPair, error)
	}
	Ledger interface {
		UnspentUtxosByAddress(ctx context.Context, address model.Address) ([]model.Utxo, error)
	}
	Reservations interface {
		ReservedBy(id model.UtxoID) (model.Hash, bool)
	}
)
