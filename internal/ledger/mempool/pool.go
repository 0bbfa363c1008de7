// Package mempool keeps the in-flight state between gossip and mining: the pool of
// transactions ready to be mined and the inputs reserved by pending transactions.
package mempool

import (
	"sort"

	"github.com/patrickmn/go-cache"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// Pool holds READY_TO_MINE transactions until a block including them is finalized.
type Pool struct {
	items *cache.Cache
}

// NewPool returns an empty pool. Entries never expire; they leave on Remove.
func NewPool() *Pool {
	return &Pool{items: cache.New(cache.NoExpiration, 0)}
}

// Add stores a copy of tx keyed by hash.
func (p *Pool) Add(tx *model.Transaction) {
	p.items.Set(string(tx.Hash), tx.Clone(), cache.NoExpiration)
}

// Contains reports whether hash is pooled.
func (p *Pool) Contains(hash model.Hash) bool {
	_, ok := p.items.Get(string(hash))
	return ok
}

// Remove drops the given hashes.
func (p *Pool) Remove(hashes []model.Hash) {
	for _, h := range hashes {
		p.items.Delete(string(h))
	}
}

// Len returns the number of pooled transactions.
func (p *Pool) Len() int {
	return p.items.ItemCount()
}

// Snapshot returns copies of the pooled transactions ordered by creation time, then hash.
func (p *Pool) Snapshot() []*model.Transaction {
	items := p.items.Items()
	out := make([]*model.Transaction, 0, len(items))
	for _, item := range items {
		if tx, ok := item.Object.(*model.Transaction); ok {
			out = append(out, tx.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Hash < out[j].Hash
	})
	return out
}
