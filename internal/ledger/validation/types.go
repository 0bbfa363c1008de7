package validation

import (
	"context"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SpentChecker interface {
		IsUtxoSpent(ctx context.Context, id model.UtxoID) (bool, error)
	}
	Reservations interface {
		ReservedBy(id model.UtxoID) (model.Hash, bool)
	}
)
