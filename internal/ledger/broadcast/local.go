// Package broadcast finalizes mined blocks into the ledger and fans transaction
// status messages out to peers.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/pkg/batcher"
)

// GossipConfig tunes the outbound transaction batcher.
type GossipConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Local is the single-node broadcaster: blocks are written straight to the
// ledger and transaction messages are delivered to the registered peers.
type Local struct {
	logger  *zap.Logger
	repo    Repository
	metrics Metrics
	peers   []Peer
	gossip  *batcher.Batcher[*model.Transaction]

	mu        sync.RWMutex
	forgetter Forgetter
}

// NewLocal builds a Local broadcaster. Without peers, transaction messages are
// only logged.
func NewLocal(repo Repository, metrics Metrics, cfg GossipConfig, logger *zap.Logger, peers ...Peer) (*Local, error) {
	if metrics == nil {
		return nil, errors.New("broadcaster metrics is required")
	}
	if cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("gossip flush interval must be positive, got %s", cfg.FlushInterval)
	}

	l := &Local{
		logger:  logger.Named("broadcast"),
		repo:    repo,
		metrics: metrics,
		peers:   peers,
	}
	l.gossip = batcher.New(l.logger, l.deliver, cfg.FlushSize, cfg.FlushInterval, cfg.RPS).
		OnFlush(func(size int, err error) {
			metrics.ObserveFlush(err, size)
		})
	return l, nil
}

// SetForgetter registers the component whose in-flight state is cleared once a
// block is finalized.
func (l *Local) SetForgetter(f Forgetter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.forgetter = f
}

// Start runs the gossip batcher until ctx is done or Stop is called.
func (l *Local) Start(ctx context.Context) {
	l.gossip.Start(ctx)
}

// Stop flushes pending messages and stops the gossip batcher.
func (l *Local) Stop() {
	l.gossip.Stop()
}

// BroadcastBlock persists a mined block: the block, its transactions, the inputs
// it consumes and the outputs it creates.
func (l *Local) BroadcastBlock(ctx context.Context, block *model.Block) (err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveBlock(err, started)
	}()

	if err := l.repo.InsertBlock(ctx, block); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	if err := l.repo.BatchInsertTransactions(ctx, block.Transactions); err != nil {
		return fmt.Errorf("insert block transactions: %w", err)
	}

	var (
		spent   []model.UtxoID
		created []model.Utxo
	)
	for _, tx := range block.Transactions {
		spent = append(spent, model.UtxoIDs(tx.Inputs)...)
		created = append(created, tx.Outputs...)
	}
	if len(spent) > 0 {
		if err := l.repo.MarkUtxosSpent(ctx, spent); err != nil {
			return fmt.Errorf("mark utxos spent: %w", err)
		}
	}
	if err := l.repo.InsertUtxos(ctx, created); err != nil {
		return fmt.Errorf("insert utxos: %w", err)
	}

	l.mu.RLock()
	forgetter := l.forgetter
	l.mu.RUnlock()
	if forgetter != nil {
		forgetter.Forget(block.TransactionHashes())
	}

	l.logger.Info("block finalized",
		zap.String("hash", block.Hash.String()),
		zap.Uint64("height", block.Height),
		zap.Int("transactions", len(block.Transactions)),
		zap.Int("spent", len(spent)),
		zap.Int("created", len(created)),
	)
	return nil
}

// BroadcastTransaction queues a status message for the next gossip flush.
func (l *Local) BroadcastTransaction(ctx context.Context, tx *model.Transaction) error {
	if err := l.gossip.Add(ctx, tx); err != nil {
		return fmt.Errorf("queue transaction %s: %w", tx.Hash, err)
	}
	return nil
}

func (l *Local) deliver(ctx context.Context, txs []*model.Transaction) error {
	for _, tx := range txs {
		l.logger.Debug("gossip transaction",
			zap.String("hash", tx.Hash.String()),
			zap.String("status", string(tx.Status)),
		)
	}

	var errs []error
	for _, p := range l.peers {
		if err := p.DeliverTransactions(ctx, txs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
