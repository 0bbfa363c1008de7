package mempool

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

// ErrAlreadyReserved is returned when an input is held by another in-flight transaction.
var ErrAlreadyReserved = errors.New("input already reserved")

// Reservations maps unspent outputs to the in-flight transaction consuming them.
// Reserve entries expire after the TTL so abandoned transactions free their
// inputs; Hold entries live until Release.
type Reservations struct {
	items *cache.Cache
	ttl   time.Duration
}

// NewReservations returns an empty set whose entries live for ttl.
func NewReservations(ttl time.Duration) *Reservations {
	cleanup := ttl
	if cleanup <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Reservations{items: cache.New(ttl, cleanup), ttl: ttl}
}

// Reserve claims every id for hash, or none of them.
func (r *Reservations) Reserve(hash model.Hash, ids []model.UtxoID) error {
	added := make([]model.UtxoID, 0, len(ids))
	for _, id := range ids {
		err := r.items.Add(id.String(), hash, r.ttl)
		if err == nil {
			added = append(added, id)
			continue
		}
		if owner, ok := r.ReservedBy(id); ok && owner == hash {
			continue
		}
		for _, undo := range added {
			r.items.Delete(undo.String())
		}
		return fmt.Errorf("%w: %s", ErrAlreadyReserved, id)
	}
	return nil
}

// Hold pins every id to hash with no expiry, re-claiming inputs whose reservation
// lapsed. It fails, releasing what it claimed, if another transaction took one.
func (r *Reservations) Hold(hash model.Hash, ids []model.UtxoID) error {
	claimed := make([]model.UtxoID, 0, len(ids))
	for _, id := range ids {
		if err := r.items.Add(id.String(), hash, cache.NoExpiration); err == nil {
			claimed = append(claimed, id)
			continue
		}
		if owner, ok := r.ReservedBy(id); ok && owner == hash {
			r.items.Set(id.String(), hash, cache.NoExpiration)
			continue
		}
		for _, undo := range claimed {
			r.items.Delete(undo.String())
		}
		return fmt.Errorf("%w: %s", ErrAlreadyReserved, id)
	}
	return nil
}

// Release frees the ids still held by hash.
func (r *Reservations) Release(hash model.Hash, ids []model.UtxoID) {
	for _, id := range ids {
		if owner, ok := r.ReservedBy(id); ok && owner == hash {
			r.items.Delete(id.String())
		}
	}
}

// ReservedBy returns the transaction holding id.
func (r *Reservations) ReservedBy(id model.UtxoID) (model.Hash, bool) {
	v, ok := r.items.Get(id.String())
	if !ok {
		return "", false
	}
	owner, ok := v.(model.Hash)
	return owner, ok
}

// Len returns the number of live reservations.
func (r *Reservations) Len() int {
	return r.items.ItemCount()
}
