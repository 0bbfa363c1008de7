package miner

import (
	"context"
	"sync/atomic"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// Mine searches nonces upward from block.Nonce until the hash meets the block
// difficulty. It gives up when solved is already set or ctx is done. A found hash
// counts only if this call flips solved from false to true; the winner gets the
// block back with Nonce and Hash stamped.
func Mine(ctx context.Context, block *model.Block, solved *atomic.Bool) (*model.Block, bool) {
	data := block.Data()
	nonce := block.Nonce
	for {
		if solved.Load() || ctx.Err() != nil {
			return nil, false
		}
		nonce++
		hash := model.PowHash(data, nonce)
		if !model.MeetsDifficulty(hash, block.Difficulty) {
			continue
		}
		if !solved.CompareAndSwap(false, true) {
			return nil, false
		}
		block.Nonce = nonce
		block.Hash = hash
		return block, true
	}
}
