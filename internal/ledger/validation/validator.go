// Package validation checks transactions against the ledger rules of their kind.
package validation

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// MaxClockDrift bounds how far a transaction timestamp may be from local time.
const MaxClockDrift = 60 * time.Second

// Rule inspects tx and appends failures to res. A returned error is an
// infrastructure or crypto failure, not a verdict on tx.
type Rule func(ctx context.Context, tx *model.Transaction, res *Result) error

// Config holds the tunable bounds of the transfer rules.
type Config struct {
	MinimumFee model.Coin
	MaximumFee model.Coin
}

// DefaultConfig bounds fees by the coin range.
func DefaultConfig() Config {
	return Config{
		MinimumFee: model.MinimumCoin,
		MaximumFee: model.MaximumCoin,
	}
}

// Validator runs the rule table registered for each transaction kind.
type Validator struct {
	spent        SpentChecker
	reservations Reservations
	cfg          Config
	now          func() time.Time
	rules        map[model.Kind][]Rule
}

// New builds a Validator with the rule table for transfers and rewards.
func New(spent SpentChecker, reservations Reservations, cfg Config) (*Validator, error) {
	if spent == nil {
		return nil, errors.New("spent checker is required")
	}
	if reservations == nil {
		return nil, errors.New("reservations are required")
	}
	if cfg.MinimumFee.IsZero() || cfg.MinimumFee.Cmp(cfg.MaximumFee) > 0 {
		return nil, errors.New("fee bounds must satisfy 0 < minimum <= maximum")
	}

	v := &Validator{
		spent:        spent,
		reservations: reservations,
		cfg:          cfg,
		now:          time.Now,
	}

	common := []Rule{v.amountRule, v.createdAtRule, v.hashRule, v.authenticityRule}
	v.rules = map[model.Kind][]Rule{
		model.KindTransfer: append(append([]Rule{}, common...),
			v.transferPartiesRule, v.feeRule, v.fundsRule, v.inputsRule, v.transferOutputsRule),
		model.KindReward: append(append([]Rule{}, common...),
			v.rewardPartiesRule, v.rewardFeeRule, v.rewardInputsRule, v.rewardOutputsRule),
	}
	return v, nil
}

// Validate runs every rule of the transaction kind without short-circuiting.
func (v *Validator) Validate(ctx context.Context, tx *model.Transaction) (*Result, error) {
	res := &Result{}
	if tx == nil {
		res.Fail("transaction is missing")
		return res, nil
	}

	rules, ok := v.rules[tx.Kind]
	if !ok {
		res.Fail("%v: %q", model.ErrUnknownKind, tx.Kind)
		return res, nil
	}

	var errs []error
	for _, rule := range rules {
		if err := rule(ctx, tx, res); err != nil {
			errs = append(errs, err)
		}
	}
	return res, errors.Join(errs...)
}
