package broadcast

import (
	"context"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlock(ctx context.Context, block *model.Block) error
		BatchInsertTransactions(ctx context.Context, txs []*model.Transaction) error
		MarkUtxosSpent(ctx context.Context, ids []model.UtxoID) error
		InsertUtxos(ctx context.Context, utxos []model.Utxo) error
	}
	Forgetter interface {
		Forget(hashes []model.Hash)
	}
	Peer interface {
		DeliverTransactions(ctx context.Context, txs []*model.Transaction) error
	}
	Metrics interface {
		ObserveBlock(err error, started time.Time)
		ObserveFlush(err error, size int)
	}
)
