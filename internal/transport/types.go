package transport

import (
	"context"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/validation"
	"github.com/goodnatureofminers/pqledger/internal/wallet"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Miners interface {
		StartMining(addr model.Address) bool
		StopMining(addr model.Address) bool
		ActiveMiners() []model.Address
	}
	Coordinator interface {
		Process(ctx context.Context, tx *model.Transaction) (*validation.Result, error)
		Transaction(hash model.Hash) (*model.Transaction, bool)
	}
	Wallet interface {
		GenerateKeyPair(ctx context.Context, alias string, password []byte) (model.Address, error)
		CreateTransfer(ctx context.Context, req wallet.TransferRequest) (*model.Transaction, error)
		Balance(ctx context.Context, address model.Address) (model.Coin, error)
	}
	Ledger interface {
		TransactionByHash(ctx context.Context, hash model.Hash) (*model.Transaction, error)
	}
)
