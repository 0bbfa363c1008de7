package validation

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

func (v *Validator) amountRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if tx.Amount.IsZero() {
		res.Fail("amount must be at least %s", model.MinimumCoin)
	}
	return nil
}

func (v *Validator) createdAtRule(_ context.Context, tx *model.Transaction, res *Result) error {
	if tx.CreatedAt.IsZero() {
		res.Fail("created-at is missing")
		return nil
	}
	drift := v.now().Sub(tx.CreatedAt)
	if drift < 0 {
		drift = -drift
	}
	if drift > MaxClockDrift {
		res.Fail("created-at %s drifts %s from local time", tx.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"), drift)
	}
	return nil
}

func (v *Validator) hashRule(_ context.Context, tx *model.Transaction, res *Result) error {
	computed, err := tx.ComputeHash()
	if err != nil {
		return fmt.Errorf("compute hash: %w", err)
	}
	if computed != tx.Hash {
		res.Fail("hash %s does not match content hash %s", tx.Hash, computed)
	}
	return nil
}

func (v *Validator) authenticityRule(_ context.Context, tx *model.Transaction, res *Result) error {
	switch tx.Kind {
	case model.KindReward:
		if !tx.HasRewardSignature() {
			res.Fail("reward signature must be the reward sentinel")
		}
		return nil
	case model.KindTransfer:
		if len(tx.Signature) == 0 {
			res.Fail("signature is missing")
			return nil
		}
		if len(tx.SenderPublicKey) == 0 {
			res.Fail("sender public key is missing")
			return nil
		}
		if model.AddressFromPublicKey(tx.SenderPublicKey) != tx.Sender {
			res.Fail("sender %s does not own the public key", tx.Sender)
			return nil
		}
		msg, err := tx.HashBytes()
		if err != nil {
			res.Fail("hash %q is malformed", tx.Hash)
			return nil
		}
		ok, err := crypto.Verify(tx.SenderPublicKey, msg, tx.Signature)
		if err != nil {
			return fmt.Errorf("verify signature of %s: %w", tx.Hash, err)
		}
		if !ok {
			res.Fail("signature does not verify")
		}
		return nil
	default:
		res.Fail("%v: %q", model.ErrUnknownKind, tx.Kind)
		return nil
	}
}
