// Package miner schedules proof-of-work races between the registered miner addresses.
package miner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/clock"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/pkg/workerpool"
)

var (
	// ErrAlreadyMining is returned when an address is registered twice.
	ErrAlreadyMining = errors.New("address is already mining")
	// ErrNotMining is returned when stopping an address that is not registered.
	ErrNotMining = errors.New("address is not mining")
)

const (
	outcomeSolved    = "solved"
	outcomeAbandoned = "abandoned"
	outcomeFailed    = "failed"
)

// Config holds the scheduler tunables.
type Config struct {
	PulseInterval time.Duration
	// GenesisTime fixes the creation time of the synthesized genesis block.
	GenesisTime time.Time
}

type generation struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler owns the miner registry and runs one proof-of-work race per pulse.
type Scheduler struct {
	logger       *zap.Logger
	repo         Repository
	pool         Pool
	reservations Reservations
	validator    Validator
	broadcaster  Broadcaster
	policy       Policy
	metrics      Metrics
	interval     time.Duration
	genesisTime  time.Time
	sleepUntil   func(context.Context, time.Time) error
	now          func() time.Time

	// registered holds the addresses that asked to mine; busy holds the ones a
	// worker has taken out of rotation for the current pulse.
	registered sync.Map
	busy       sync.Map

	pulseMu sync.Mutex
	current *generation
	wg      sync.WaitGroup
}

// New builds a Scheduler.
func New(
	repo Repository,
	pool Pool,
	reservations Reservations,
	validator Validator,
	broadcaster Broadcaster,
	policy Policy,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Scheduler, error) {
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	if policy == nil {
		return nil, errors.New("mining policy is required")
	}
	if cfg.PulseInterval <= 0 {
		return nil, fmt.Errorf("pulse interval must be positive, got %s", cfg.PulseInterval)
	}

	return &Scheduler{
		logger:       logger.Named("miner"),
		repo:         repo,
		pool:         pool,
		reservations: reservations,
		validator:    validator,
		broadcaster:  broadcaster,
		policy:       policy,
		metrics:      metrics,
		interval:     cfg.PulseInterval,
		genesisTime:  cfg.GenesisTime,
		sleepUntil:   clock.SleepUntil,
		now:          time.Now,
	}, nil
}

// StartMining registers addr. It returns false if addr is already registered.
func (s *Scheduler) StartMining(addr model.Address) bool {
	_, loaded := s.registered.LoadOrStore(addr, struct{}{})
	if !loaded {
		s.logger.Info("miner registered", zap.String("address", addr.String()))
		s.metrics.SetActiveMiners(len(s.ActiveMiners()))
	}
	return !loaded
}

// StopMining unregisters addr. It returns false if addr was not registered. A
// worker already racing for addr finishes its pulse and does not come back.
func (s *Scheduler) StopMining(addr model.Address) bool {
	_, loaded := s.registered.LoadAndDelete(addr)
	if loaded {
		s.logger.Info("miner unregistered", zap.String("address", addr.String()))
		s.metrics.SetActiveMiners(len(s.ActiveMiners()))
	}
	return loaded
}

// IsMining reports whether addr is registered.
func (s *Scheduler) IsMining(addr model.Address) bool {
	_, ok := s.registered.Load(addr)
	return ok
}

// ActiveMiners lists the registered addresses in lexical order.
func (s *Scheduler) ActiveMiners() []model.Address {
	var out []model.Address
	s.registered.Range(func(key, _ any) bool {
		out = append(out, key.(model.Address))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Run pulses on a fixed interval grid until ctx is done, then stops the last race.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("mining scheduler started", zap.Duration("interval", s.interval))
	defer s.shutdown()

	origin := s.now()
	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.Pulse(ctx); err != nil {
			s.logger.Warn("pulse failed", zap.Error(err))
		}
		if err := s.sleepUntil(ctx, clock.NextPulse(origin, s.now(), s.interval)); err != nil {
			return
		}
	}
}

// Pulse supersedes the previous race and starts a new one for every idle
// registered address. It returns once the workers are dispatched.
func (s *Scheduler) Pulse(ctx context.Context) error {
	s.pulseMu.Lock()
	defer s.pulseMu.Unlock()

	s.supersede()

	addrs := s.claimIdle()
	if len(addrs) == 0 {
		return nil
	}

	template, err := s.template(ctx)
	if err != nil {
		for _, addr := range addrs {
			s.busy.Delete(addr)
		}
		s.metrics.ObservePulse(err, 0)
		return err
	}

	pulseCtx, cancel := context.WithCancel(ctx)
	gen := &generation{cancel: cancel, done: make(chan struct{})}
	s.current = gen
	solved := &atomic.Bool{}

	logger := s.logger.With(
		zap.Uint64("height", template.Height),
		zap.Int("difficulty", template.Difficulty),
		zap.Int("transactions", len(template.Transactions)),
	)
	logger.Debug("pulse started", zap.Int("workers", len(addrs)))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(gen.done)
		defer cancel()

		err := workerpool.ProcessAll(pulseCtx, len(addrs), addrs, func(ctx context.Context, addr model.Address) error {
			return s.work(ctx, template, solved, addr)
		})
		if err != nil {
			logger.Warn("pulse finished with failed workers", zap.Error(err))
		}
	}()

	s.metrics.ObservePulse(nil, len(addrs))
	return nil
}

// Wait blocks until every dispatched race has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) shutdown() {
	s.pulseMu.Lock()
	s.supersede()
	s.pulseMu.Unlock()
	s.Wait()
	s.logger.Info("mining scheduler stopped")
}

// supersede cancels the running race and waits for its workers to return their
// addresses. Callers hold pulseMu.
func (s *Scheduler) supersede() {
	if s.current == nil {
		return
	}
	s.current.cancel()
	<-s.current.done
	s.current = nil
}

func (s *Scheduler) claimIdle() []model.Address {
	var addrs []model.Address
	for _, addr := range s.ActiveMiners() {
		if _, taken := s.busy.LoadOrStore(addr, struct{}{}); !taken {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func (s *Scheduler) template(ctx context.Context) (*model.Block, error) {
	parent, err := s.repo.LatestBlock(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		parent = model.GenesisBlock(s.genesisTime)
	case err != nil:
		return nil, fmt.Errorf("latest block: %w", err)
	}

	template, err := model.NewTemplate(parent, s.policy.Difficulty(), s.policy.RewardAmount(), s.pool.Snapshot(), s.now())
	if err != nil {
		return nil, fmt.Errorf("assemble block template: %w", err)
	}
	return template, nil
}

func (s *Scheduler) work(ctx context.Context, template *model.Block, solved *atomic.Bool, addr model.Address) (err error) {
	started := time.Now()
	outcome := outcomeAbandoned
	logger := s.logger.With(zap.String("address", addr.String()), zap.Uint64("height", template.Height))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mining worker panic: %v", r)
		}
		if err != nil {
			outcome = outcomeFailed
			logger.Error("mining worker failed", zap.Error(err))
		}
		s.busy.Delete(addr)
		s.metrics.ObservePow(outcome, started)
	}()

	block := template.Clone()
	reward, err := model.NewReward(addr, block.Reward, s.now())
	if err != nil {
		return fmt.Errorf("mint reward: %w", err)
	}
	res, err := s.validator.Validate(ctx, reward)
	if err != nil {
		return fmt.Errorf("validate reward: %w", err)
	}
	if !res.Valid() {
		return fmt.Errorf("reward rejected: %s", res)
	}
	if err := block.AddTransaction(reward); err != nil {
		return fmt.Errorf("add reward: %w", err)
	}

	mined, ok := Mine(ctx, block, solved)
	if !ok {
		logger.Debug("block abandoned")
		return nil
	}
	mined.MinedAt = s.now().UTC().Truncate(time.Millisecond)
	outcome = outcomeSolved

	// The race is won; finish persisting even if a newer pulse cancels ctx.
	if err := s.broadcaster.BroadcastBlock(context.WithoutCancel(ctx), mined); err != nil {
		return fmt.Errorf("broadcast block %s: %w", mined.Hash, err)
	}

	for _, tx := range mined.Transactions {
		if tx.Kind == model.KindTransfer {
			s.reservations.Release(tx.Hash, model.UtxoIDs(tx.Inputs))
		}
	}
	s.pool.Remove(mined.TransactionHashes())

	logger.Info("block mined",
		zap.String("hash", mined.Hash.String()),
		zap.Uint64("nonce", mined.Nonce),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}
