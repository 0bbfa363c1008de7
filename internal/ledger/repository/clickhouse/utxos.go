package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/pkg/safe"
)

const insertUtxosQuery = `
INSERT INTO ledger_utxos (
	tx_hash,
	output_index,
	recipient,
	amount,
	created_at,
	spent,
	version
) VALUES`

const utxoColumns = `
	tx_hash,
	output_index,
	recipient,
	amount,
	created_at,
	spent`

const unspentUtxosByAddressQuery = `
SELECT` + utxoColumns + `
FROM ledger_utxos FINAL
WHERE recipient = ? AND spent = false
ORDER BY created_at, tx_hash, output_index`

const utxosByIDQuery = `
SELECT` + utxoColumns + `
FROM ledger_utxos FINAL
WHERE concat(tx_hash, ':', output_index) IN ?`

const utxosByTransactionQuery = `
SELECT` + utxoColumns + `
FROM ledger_utxos FINAL
WHERE tx_hash = ?
ORDER BY output_index`

const isUtxoSpentQuery = `
SELECT spent
FROM ledger_utxos FINAL
WHERE tx_hash = ? AND output_index = ?
LIMIT 1`

// InsertUtxos stores new outputs as unspent.
func (r *Repository) InsertUtxos(ctx context.Context, utxos []model.Utxo) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_utxos", len(utxos), err, start)
	}()

	err = r.appendUtxos(ctx, utxos, false)
	return err
}

// MarkUtxosSpent flips the spent flag of the given outputs. The table is a
// ReplacingMergeTree, so the flag is written as a newer version of each row.
func (r *Repository) MarkUtxosSpent(ctx context.Context, ids []model.UtxoID) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_utxos_spent", len(ids), err, start)
	}()

	if len(ids) == 0 {
		return nil
	}

	utxos, err := r.UtxosByID(ctx, ids)
	if err != nil {
		return fmt.Errorf("load utxos to spend: %w", err)
	}
	if len(utxos) != len(ids) {
		err = fmt.Errorf("mark %d utxos spent, %d stored: %w", len(ids), len(utxos), model.ErrNotFound)
		return err
	}

	err = r.appendUtxos(ctx, utxos, true)
	return err
}

func (r *Repository) appendUtxos(ctx context.Context, utxos []model.Utxo, spent bool) error {
	if len(utxos) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertUtxosQuery)
	if err != nil {
		return fmt.Errorf("prepare utxos batch: %w", err)
	}

	version, err := safe.Uint64(time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("utxo version: %w", err)
	}
	for _, utxo := range utxos {
		if err = batch.Append(
			string(utxo.ID.TxHash),
			string(utxo.ID.Index),
			string(utxo.Recipient),
			utxo.Amount.Atoms(),
			utxo.CreatedAt,
			spent,
			version,
		); err != nil {
			return fmt.Errorf("append utxo %s: %w", utxo.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert utxos: %w", err)
	}
	return nil
}

// UnspentUtxosByAddress lists the unspent outputs owned by address, oldest first.
func (r *Repository) UnspentUtxosByAddress(ctx context.Context, address model.Address) (_ []model.Utxo, err error) {
	start := time.Now()
	var utxos []model.Utxo
	defer func() {
		r.metrics.Observe("unspent_utxos_by_address", len(utxos), err, start)
	}()

	utxos, err = r.queryUtxos(ctx, unspentUtxosByAddressQuery, string(address))
	return utxos, err
}

// UtxosByID loads the outputs with the given ids. Unknown ids are skipped.
func (r *Repository) UtxosByID(ctx context.Context, ids []model.UtxoID) (_ []model.Utxo, err error) {
	start := time.Now()
	var utxos []model.Utxo
	defer func() {
		r.metrics.Observe("utxos_by_id", len(utxos), err, start)
	}()

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	utxos, err = r.queryUtxos(ctx, utxosByIDQuery, keys)
	return utxos, err
}

// UtxosByTransaction loads the outputs created by the transaction.
func (r *Repository) UtxosByTransaction(ctx context.Context, hash model.Hash) (_ []model.Utxo, err error) {
	start := time.Now()
	var utxos []model.Utxo
	defer func() {
		r.metrics.Observe("utxos_by_transaction", len(utxos), err, start)
	}()

	utxos, err = r.queryUtxos(ctx, utxosByTransactionQuery, string(hash))
	return utxos, err
}

// IsUtxoSpent reports whether the output has been consumed by a mined block.
// An output that was never stored yields model.ErrNotFound.
func (r *Repository) IsUtxoSpent(ctx context.Context, id model.UtxoID) (_ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("is_utxo_spent", 1, err, start)
	}()

	rows, err := r.conn.Query(ctx, isUtxoSpentQuery, string(id.TxHash), string(id.Index))
	if err != nil {
		return false, fmt.Errorf("query utxo %s: %w", id, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return false, fmt.Errorf("iterate utxo %s: %w", id, err)
		}
		return false, fmt.Errorf("utxo %s: %w", id, model.ErrNotFound)
	}

	var spent bool
	if err = rows.Scan(&spent); err != nil {
		return false, fmt.Errorf("scan utxo %s: %w", id, err)
	}
	return spent, rows.Err()
}

func (r *Repository) queryUtxos(ctx context.Context, query string, args ...any) (_ []model.Utxo, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query utxos: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var result []model.Utxo
	for rows.Next() {
		utxo, scanErr := scanUtxo(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, utxo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utxos: %w", err)
	}
	return result, nil
}

func scanUtxo(rows driver.Rows) (model.Utxo, error) {
	var (
		txHash, index, recipient string
		amount                   int64
		utxo                     model.Utxo
	)
	if err := rows.Scan(&txHash, &index, &recipient, &amount, &utxo.CreatedAt, &utxo.Spent); err != nil {
		return model.Utxo{}, fmt.Errorf("scan utxo: %w", err)
	}

	coin, err := model.CoinFromAtoms(amount)
	if err != nil {
		return model.Utxo{}, fmt.Errorf("decode utxo amount: %w", err)
	}
	outputIndex, err := model.ParseOutputIndex(index)
	if err != nil {
		return model.Utxo{}, fmt.Errorf("decode utxo %s index: %w", txHash, err)
	}

	utxo.ID = model.UtxoID{TxHash: model.Hash(txHash), Index: outputIndex}
	utxo.Recipient = model.Address(recipient)
	utxo.Amount = coin
	utxo.CreatedAt = utxo.CreatedAt.UTC()
	return utxo, nil
}
