// Package coordinator drives the gossip lifecycle of transactions from submission
// to the ready-to-mine pool.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/validation"
)

// ErrUnexpectedStatus is returned for a message whose status is not valid in the
// local state of the transaction.
var ErrUnexpectedStatus = errors.New("unexpected transaction status")

const (
	voteConfirm = "confirm"
	voteReject  = "reject"
)

// Config holds the tunables of the coordinator.
type Config struct {
	// Quorum is the number of votes that promotes or fails a transaction.
	Quorum int
	// KnownCapacity bounds the number of in-flight transactions remembered.
	KnownCapacity int
}

type gossipCounter struct {
	confirmations int
	rejections    int
	// locallyInvalid is set when this node's own validation failed; peer
	// confirmations are then counted but never promote the transaction.
	locallyInvalid bool
}

// Coordinator owns the known-transaction set and the gossip counters. Every state
// change happens under mu, so a hash is processed by one message at a time.
type Coordinator struct {
	logger       *zap.Logger
	validator    Validator
	broadcaster  Broadcaster
	pool         Pool
	reservations Reservations
	metrics      Metrics
	quorum       int

	mu       sync.Mutex
	known    *lru.Cache[model.Hash, *model.Transaction]
	mined    *lru.Cache[model.Hash, struct{}]
	counters map[model.Hash]*gossipCounter
}

// New builds a Coordinator.
func New(
	validator Validator,
	broadcaster Broadcaster,
	pool Pool,
	reservations Reservations,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Coordinator, error) {
	if metrics == nil {
		return nil, errors.New("coordinator metrics is required")
	}
	if cfg.Quorum < 1 {
		return nil, fmt.Errorf("quorum must be positive, got %d", cfg.Quorum)
	}

	c := &Coordinator{
		logger:       logger.Named("coordinator"),
		validator:    validator,
		broadcaster:  broadcaster,
		pool:         pool,
		reservations: reservations,
		metrics:      metrics,
		quorum:       cfg.Quorum,
		counters:     make(map[model.Hash]*gossipCounter),
	}
	known, err := lru.NewWithEvict[model.Hash, *model.Transaction](cfg.KnownCapacity, c.evicted)
	if err != nil {
		return nil, fmt.Errorf("create known transaction cache: %w", err)
	}
	c.known = known
	if c.mined, err = lru.New[model.Hash, struct{}](cfg.KnownCapacity); err != nil {
		return nil, fmt.Errorf("create mined transaction cache: %w", err)
	}
	return c, nil
}

// Process applies one gossip message or local submission. The result carries the
// validation failures when the transaction was validated by this call.
func (c *Coordinator) Process(ctx context.Context, incoming *model.Transaction) (res *validation.Result, err error) {
	if incoming == nil {
		return nil, errors.New("process transaction: nil transaction")
	}
	started := time.Now()
	defer func() {
		c.metrics.ObserveProcess(string(incoming.Status), err, started)
	}()

	logger := c.logger.With(
		zap.String("hash", incoming.Hash.String()),
		zap.String("incoming_status", string(incoming.Status)),
	)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mined.Contains(incoming.Hash) {
		logger.Debug("ignore message for mined transaction")
		return &validation.Result{}, nil
	}

	local, known := c.known.Get(incoming.Hash)
	if !known {
		return c.processUnknown(ctx, incoming.Clone(), logger)
	}

	if local.Status.Terminal() {
		logger.Debug("ignore message for settled transaction", zap.String("local_status", string(local.Status)))
		return &validation.Result{}, nil
	}

	switch incoming.Status {
	case model.StatusConfirmed:
		c.confirm(ctx, local, logger)
	case model.StatusRejected:
		c.reject(ctx, local, logger)
	default:
		logger.Warn("drop message with unexpected status", zap.String("local_status", string(local.Status)))
		return nil, fmt.Errorf("%w: %s for known transaction %s", ErrUnexpectedStatus, incoming.Status, incoming.Hash)
	}
	return &validation.Result{}, nil
}

func (c *Coordinator) processUnknown(ctx context.Context, tx *model.Transaction, logger *zap.Logger) (*validation.Result, error) {
	switch tx.Status {
	case model.StatusInitialised:
		res, err := c.admit(ctx, tx)
		if err != nil {
			return nil, err
		}
		if !res.Valid() {
			logger.Info("transaction invalidated", zap.Strings("failures", res.Failures()))
			return res, nil
		}
		c.setStatus(tx, model.StatusBroadcasted)
		c.broadcast(ctx, tx, logger)
		return res, nil

	case model.StatusBroadcasted, model.StatusConfirmed, model.StatusRejected:
		res, err := c.admit(ctx, tx)
		if err != nil {
			return nil, err
		}
		if !res.Valid() {
			logger.Info("peer transaction invalidated", zap.Strings("failures", res.Failures()))
			c.counter(tx.Hash).locallyInvalid = true
			c.reject(ctx, tx, logger)
			return res, nil
		}
		c.confirm(ctx, tx, logger)
		return res, nil

	default:
		logger.Warn("drop unknown transaction with unexpected status")
		return nil, fmt.Errorf("%w: %s for unknown transaction %s", ErrUnexpectedStatus, tx.Status, tx.Hash)
	}
}

// admit validates tx, reserves its inputs and remembers it as VALIDATED or INVALIDATED.
func (c *Coordinator) admit(ctx context.Context, tx *model.Transaction) (*validation.Result, error) {
	res, err := c.validator.Validate(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("validate transaction %s: %w", tx.Hash, err)
	}
	if res.Valid() {
		if err := c.reservations.Reserve(tx.Hash, model.UtxoIDs(tx.Inputs)); err != nil {
			res.Fail("double spend: %v", err)
		}
	}

	if res.Valid() {
		c.setStatus(tx, model.StatusValidated)
	} else {
		c.setStatus(tx, model.StatusInvalidated)
	}
	c.known.Add(tx.Hash, tx)
	return res, nil
}

func (c *Coordinator) confirm(ctx context.Context, tx *model.Transaction, logger *zap.Logger) {
	counter := c.counter(tx.Hash)
	counter.confirmations++
	c.metrics.ObserveVote(voteConfirm)

	if counter.locallyInvalid {
		logger.Debug("ignore confirmation for locally invalid transaction", zap.Int("confirmations", counter.confirmations))
		return
	}

	if counter.confirmations >= c.quorum {
		// Pooled transactions keep their inputs until mined.
		if err := c.reservations.Hold(tx.Hash, model.UtxoIDs(tx.Inputs)); err != nil {
			logger.Warn("inputs lost before promotion", zap.Error(err))
			delete(c.counters, tx.Hash)
			c.setStatus(tx, model.StatusRejected)
			c.broadcast(ctx, tx, logger)
			c.reservations.Release(tx.Hash, model.UtxoIDs(tx.Inputs))
			c.setStatus(tx, model.StatusFailed)
			return
		}
		c.setStatus(tx, model.StatusConfirmed)
		c.broadcast(ctx, tx, logger)
		c.setStatus(tx, model.StatusReadyToMine)
		c.pool.Add(tx)
		delete(c.counters, tx.Hash)
		logger.Info("transaction ready to mine", zap.Int("confirmations", counter.confirmations))
		return
	}

	if tx.Status == model.StatusValidated {
		c.setStatus(tx, model.StatusBroadcasted)
		c.broadcast(ctx, tx, logger)
	}
}

func (c *Coordinator) reject(ctx context.Context, tx *model.Transaction, logger *zap.Logger) {
	counter := c.counter(tx.Hash)
	counter.rejections++
	c.metrics.ObserveVote(voteReject)

	c.setStatus(tx, model.StatusRejected)
	c.broadcast(ctx, tx, logger)

	if counter.rejections >= c.quorum {
		delete(c.counters, tx.Hash)
		c.reservations.Release(tx.Hash, model.UtxoIDs(tx.Inputs))
		c.setStatus(tx, model.StatusFailed)
		logger.Info("transaction failed", zap.Int("rejections", counter.rejections))
	}
}

func (c *Coordinator) counter(hash model.Hash) *gossipCounter {
	counter, ok := c.counters[hash]
	if !ok {
		counter = &gossipCounter{}
		c.counters[hash] = counter
	}
	return counter
}

func (c *Coordinator) setStatus(tx *model.Transaction, status model.Status) {
	tx.Status = status
	c.metrics.ObserveTransition(string(status))
}

func (c *Coordinator) broadcast(ctx context.Context, tx *model.Transaction, logger *zap.Logger) {
	if err := c.broadcaster.BroadcastTransaction(ctx, tx.Clone()); err != nil {
		logger.Warn("broadcast transaction failed", zap.String("status", string(tx.Status)), zap.Error(err))
	}
}

// evicted runs inside known mutations, which already hold mu.
func (c *Coordinator) evicted(hash model.Hash, tx *model.Transaction) {
	delete(c.counters, hash)
	if !tx.Status.Terminal() {
		c.reservations.Release(hash, model.UtxoIDs(tx.Inputs))
	}
}

// Forget moves finalized transactions from the known set to the mined set, so
// late gossip about them is ignored.
func (c *Coordinator) Forget(hashes []model.Hash) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range hashes {
		c.known.Remove(h)
		delete(c.counters, h)
		c.mined.Add(h, struct{}{})
	}
}

// Transaction returns a copy of an in-flight transaction.
func (c *Coordinator) Transaction(hash model.Hash) (*model.Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, ok := c.known.Peek(hash)
	if !ok {
		return nil, false
	}
	return tx.Clone(), true
}
