package validation

import (
	"context"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

func (v *Validator) rewardPartiesRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if !tx.Sender.Valid() || !tx.Recipient.Valid() {
		res.Fail("reward parties %q and %q must be well-formed", tx.Sender, tx.Recipient)
	}
	if tx.Sender != tx.Recipient {
		res.Fail("reward sender and recipient must be the miner")
	}
	return nil
}

func (v *Validator) rewardFeeRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if !tx.Fee.IsZero() {
		res.Fail("reward fee must be zero, got %s", tx.Fee)
	}
	return nil
}

func (v *Validator) rewardInputsRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if len(tx.Inputs) != 0 {
		res.Fail("reward must not have inputs")
	}
	return nil
}

func (v *Validator) rewardOutputsRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if len(tx.Outputs) != 1 {
		res.Fail("reward must have exactly one output, got %d", len(tx.Outputs))
		return nil
	}
	if !matchesOutput(tx, tx.Outputs[0], model.OutputRecipient, tx.Recipient, tx.Amount) {
		res.Fail("reward output must pay %s to the miner", tx.Amount)
	}
	return nil
}
