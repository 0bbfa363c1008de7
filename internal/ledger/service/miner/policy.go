package miner

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// ErrInvalidPolicy is returned for a policy no block could ever satisfy.
var ErrInvalidPolicy = errors.New("invalid mining policy")

// maxDifficulty is the hex length of a block hash.
const maxDifficulty = 2 * crypto.HashSize

// FixedPolicy returns the same difficulty and reward for every block.
type FixedPolicy struct {
	difficulty int
	reward     model.Coin
}

// NewFixedPolicy builds a FixedPolicy. The reward must be positive, since the
// validator rejects zero-amount rewards, and the difficulty must fit a hash.
func NewFixedPolicy(difficulty int, reward model.Coin) (FixedPolicy, error) {
	if difficulty < 0 || difficulty > maxDifficulty {
		return FixedPolicy{}, fmt.Errorf("%w: difficulty %d outside [0, %d]", ErrInvalidPolicy, difficulty, maxDifficulty)
	}
	if reward.IsZero() {
		return FixedPolicy{}, fmt.Errorf("%w: reward must be at least %s", ErrInvalidPolicy, model.MinimumCoin)
	}
	return FixedPolicy{difficulty: difficulty, reward: reward}, nil
}

// Difficulty returns the required count of leading zero hex characters.
func (p FixedPolicy) Difficulty() int {
	return p.difficulty
}

// RewardAmount returns the block subsidy.
func (p FixedPolicy) RewardAmount() model.Coin {
	return p.reward
}
