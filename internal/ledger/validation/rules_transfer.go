package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// maxTransferOutputs is one payment plus optional change.
const maxTransferOutputs = 2

func (v *Validator) transferPartiesRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if !tx.Sender.Valid() {
		res.Fail("sender %q is malformed", tx.Sender)
	}
	if !tx.Recipient.Valid() {
		res.Fail("recipient %q is malformed", tx.Recipient)
	}
	if tx.Sender == tx.Recipient {
		res.Fail("sender and recipient must differ")
	}
	return nil
}

func (v *Validator) feeRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if tx.Fee.Cmp(v.cfg.MinimumFee) < 0 || tx.Fee.Cmp(v.cfg.MaximumFee) > 0 {
		res.Fail("fee %s outside [%s, %s]", tx.Fee, v.cfg.MinimumFee, v.cfg.MaximumFee)
	}
	return nil
}

func (v *Validator) fundsRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if len(tx.Inputs) == 0 {
		res.Fail("transfer has no inputs")
		return nil
	}
	if _, err := tx.Change(); err != nil {
		res.Fail("%v", err)
	}
	return nil
}

func (v *Validator) inputsRule(ctx context.Context, tx *model.Transaction, res *Result) error {
	seen := make(map[model.UtxoID]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, dup := seen[in.ID]; dup {
			res.Fail("double spend: input %s listed twice", in.ID)
			continue
		}
		seen[in.ID] = struct{}{}

		if owner, ok := v.reservations.ReservedBy(in.ID); ok && owner != tx.Hash {
			res.Fail("double spend: input %s reserved by in-flight transaction %s", in.ID, owner)
		}
		spent, err := v.spent.IsUtxoSpent(ctx, in.ID)
		switch {
		case errors.Is(err, model.ErrNotFound):
			res.Fail("input %s does not exist", in.ID)
		case err != nil:
			return fmt.Errorf("check utxo %s spent: %w", in.ID, err)
		}
		if spent || in.Spent {
			res.Fail("double spend: input %s already spent", in.ID)
		}
		if !in.ID.Index.Valid() {
			res.Fail("input %s has an invalid output index", in.ID)
		}
		if in.Recipient != tx.Sender {
			res.Fail("input %s belongs to %s, not the sender", in.ID, in.Recipient)
		}
		if in.Amount.IsZero() {
			res.Fail("input %s has a zero amount", in.ID)
		}
		if !in.CreatedAt.Before(tx.CreatedAt) {
			res.Fail("input %s is not older than the transaction", in.ID)
		}
	}
	return nil
}

func (v *Validator) transferOutputsRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if len(tx.Outputs) == 0 || len(tx.Outputs) > maxTransferOutputs {
		res.Fail("transfer must have 1 to %d outputs, got %d", maxTransferOutputs, len(tx.Outputs))
		return nil
	}

	if !matchesOutput(tx, tx.Outputs[0], model.OutputRecipient, tx.Recipient, tx.Amount) {
		res.Fail("first output must pay %s to the recipient", tx.Amount)
	}

	change, err := tx.Change()
	if err != nil {
		// funds rule already reported this
		return nil
	}
	switch {
	case len(tx.Outputs) == 2 && change.IsZero():
		res.Fail("change output present without change")
	case len(tx.Outputs) == 2:
		if !matchesOutput(tx, tx.Outputs[1], model.OutputSender, tx.Sender, change) {
			res.Fail("second output must return change %s to the sender", change)
		}
	case !change.IsZero():
		res.Fail("change %s has no output", change)
	}
	return nil
}

func matchesOutput(tx *model.Transaction, out model.Utxo, index model.OutputIndex, recipient model.Address, amount model.Coin) bool {
	return out.ID.TxHash == tx.Hash &&
		out.ID.Index == index &&
		out.Recipient == recipient &&
		out.Amount.Cmp(amount) == 0 &&
		out.CreatedAt.Equal(tx.CreatedAt) &&
		!out.Spent
}
