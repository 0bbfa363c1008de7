package miner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		LatestBlock(ctx context.Context) (*model.Block, error)
	}
	Pool interface {
		Snapshot() []*model.Transaction
		Remove(hashes []model.Hash)
	}
	Reservations interface {
		Release(hash model.Hash, ids []model.UtxoID)
	}
	Validator interface {
		Validate(ctx context.Context, tx *model.Transaction) (*validation.Result, error)
	}
	Broadcaster interface {
		BroadcastBlock(ctx context.Context, block *model.Block) error
	}
	Policy interface {
		Difficulty() int
		RewardAmount() model.Coin
	}
	Metrics interface {
		ObservePulse(err error, workers int)
		ObservePow(outcome string, started time.Time)
		SetActiveMiners(n int)
	}
)
