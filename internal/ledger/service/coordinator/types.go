package coordinator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/validation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Validator interface {
		Validate(ctx context.Context, tx *model.Transaction) (*validation.Result, error)
	}
	Broadcaster interface {
		BroadcastTransaction(ctx context.Context, tx *model.Transaction) error
	}
	Pool interface {
		Add(tx *model.Transaction)
	}
	Reservations interface {
		Reserve(hash model.Hash, ids []model.UtxoID) error
		Hold(hash model.Hash, ids []model.UtxoID) error
		Release(hash model.Hash, ids []model.UtxoID)
	}
	Metrics interface {
		ObserveProcess(incoming string, err error, started time.Time)
		ObserveVote(vote string)
		ObserveTransition(to string)
	}
)
