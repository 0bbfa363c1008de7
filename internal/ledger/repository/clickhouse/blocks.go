package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/pkg/safe"
)

const insertBlockQuery = `
INSERT INTO ledger_blocks (
	hash,
	previous_hash,
	height,
	nonce,
	difficulty,
	merkle_root,
	reward,
	tx_count,
	created_at,
	mined_at
) VALUES`

const latestBlockQuery = `
SELECT
	hash,
	previous_hash,
	height,
	nonce,
	difficulty,
	merkle_root,
	reward,
	created_at,
	mined_at
FROM ledger_blocks FINAL
ORDER BY height DESC, mined_at ASC
LIMIT 1`

// InsertBlock stores the block header.
func (r *Repository) InsertBlock(ctx context.Context, block *model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", 1, err, start)
	}()

	difficulty, err := safe.Uint32(block.Difficulty)
	if err != nil {
		return fmt.Errorf("block difficulty: %w", err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return fmt.Errorf("block tx count: %w", err)
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	if err = batch.Append(
		string(block.Hash),
		string(block.PreviousHash),
		block.Height,
		block.Nonce,
		difficulty,
		string(block.MerkleRoot),
		block.Reward.Atoms(),
		txCount,
		block.CreatedAt,
		block.MinedAt,
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// LatestBlock returns the header of the highest stored block, or model.ErrNotFound
// when the ledger is empty. Transactions are not loaded.
func (r *Repository) LatestBlock(ctx context.Context) (_ *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_block", 0, err, start)
	}()

	rows, err := r.conn.Query(ctx, latestBlockQuery)
	if err != nil {
		return nil, fmt.Errorf("query latest block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate latest block: %w", err)
		}
		return nil, fmt.Errorf("latest block: %w", model.ErrNotFound)
	}

	var (
		hash, previousHash, merkleRoot string
		difficulty                     uint32
		reward                         int64
		block                          model.Block
	)
	if err = rows.Scan(
		&hash,
		&previousHash,
		&block.Height,
		&block.Nonce,
		&difficulty,
		&merkleRoot,
		&reward,
		&block.CreatedAt,
		&block.MinedAt,
	); err != nil {
		return nil, fmt.Errorf("scan latest block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest block: %w", err)
	}

	block.Hash = model.Hash(hash)
	block.PreviousHash = model.Hash(previousHash)
	block.MerkleRoot = model.Hash(merkleRoot)
	block.Difficulty = int(difficulty)
	block.CreatedAt = block.CreatedAt.UTC()
	block.MinedAt = block.MinedAt.UTC()
	if block.Reward, err = model.CoinFromAtoms(reward); err != nil {
		return nil, fmt.Errorf("decode block reward: %w", err)
	}
	return &block, nil
}
