package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
)

const insertTransactionsQuery = `
INSERT INTO ledger_transactions (
	hash,
	kind,
	sender,
	recipient,
	sender_public_key,
	amount,
	fee,
	created_at,
	input_tx_hashes,
	input_indexes,
	signature,
	status
) VALUES`

const transactionByHashQuery = `
SELECT
	kind,
	sender,
	recipient,
	sender_public_key,
	amount,
	fee,
	created_at,
	input_tx_hashes,
	input_indexes,
	signature,
	status
FROM ledger_transactions FINAL
WHERE hash = ?
LIMIT 1`

// BatchInsertTransactions stores transactions. Inputs are kept as ids; outputs
// live in the utxo table.
func (r *Repository) BatchInsertTransactions(ctx context.Context, txs []*model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", len(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		inputHashes := make([]string, 0, len(tx.Inputs))
		inputIndexes := make([]string, 0, len(tx.Inputs))
		for _, in := range tx.Inputs {
			inputHashes = append(inputHashes, string(in.ID.TxHash))
			inputIndexes = append(inputIndexes, string(in.ID.Index))
		}

		if err = batch.Append(
			string(tx.Hash),
			string(tx.Kind),
			string(tx.Sender),
			string(tx.Recipient),
			hex.EncodeToString(tx.SenderPublicKey),
			tx.Amount.Atoms(),
			tx.Fee.Atoms(),
			tx.CreatedAt,
			inputHashes,
			inputIndexes,
			hex.EncodeToString(tx.Signature),
			string(tx.Status),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

// TransactionByHash loads a stored transaction with its inputs and outputs.
func (r *Repository) TransactionByHash(ctx context.Context, hash model.Hash) (*model.Transaction, error) {
	tx, inputIDs, err := r.transactionRow(ctx, hash)
	if err != nil {
		return nil, err
	}

	if tx.Inputs, err = r.UtxosByID(ctx, inputIDs); err != nil {
		return nil, fmt.Errorf("load inputs of %s: %w", hash, err)
	}
	if tx.Outputs, err = r.UtxosByTransaction(ctx, hash); err != nil {
		return nil, fmt.Errorf("load outputs of %s: %w", hash, err)
	}
	return tx, nil
}

func (r *Repository) transactionRow(ctx context.Context, hash model.Hash) (_ *model.Transaction, _ []model.UtxoID, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_by_hash", 0, err, start)
	}()

	rows, err := r.conn.Query(ctx, transactionByHashQuery, string(hash))
	if err != nil {
		return nil, nil, fmt.Errorf("query transaction: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, nil, fmt.Errorf("iterate transaction: %w", err)
		}
		return nil, nil, fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
	}

	var (
		kind, sender, recipient, publicKey, signature, status string
		amount, fee                                           int64
		createdAt                                             time.Time
		inputHashes, inputIndexes                             []string
	)
	if err = rows.Scan(
		&kind,
		&sender,
		&recipient,
		&publicKey,
		&amount,
		&fee,
		&createdAt,
		&inputHashes,
		&inputIndexes,
		&signature,
		&status,
	); err != nil {
		return nil, nil, fmt.Errorf("scan transaction: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate transaction: %w", err)
	}
	if len(inputHashes) != len(inputIndexes) {
		err = fmt.Errorf("transaction %s has %d input hashes and %d indexes", hash, len(inputHashes), len(inputIndexes))
		return nil, nil, err
	}

	tx := &model.Transaction{
		Hash:      hash,
		Kind:      model.Kind(kind),
		Sender:    model.Address(sender),
		Recipient: model.Address(recipient),
		CreatedAt: createdAt.UTC(),
		Status:    model.Status(status),
	}
	if tx.SenderPublicKey, err = hex.DecodeString(publicKey); err != nil {
		return nil, nil, fmt.Errorf("decode sender public key: %w", err)
	}
	if tx.Signature, err = hex.DecodeString(signature); err != nil {
		return nil, nil, fmt.Errorf("decode signature: %w", err)
	}
	if tx.Amount, err = model.CoinFromAtoms(amount); err != nil {
		return nil, nil, fmt.Errorf("decode amount: %w", err)
	}
	if tx.Fee, err = model.CoinFromAtoms(fee); err != nil {
		return nil, nil, fmt.Errorf("decode fee: %w", err)
	}

	ids := make([]model.UtxoID, 0, len(inputHashes))
	for i := range inputHashes {
		index, parseErr := model.ParseOutputIndex(inputIndexes[i])
		if parseErr != nil {
			return nil, nil, fmt.Errorf("decode input %d index: %w", i, parseErr)
		}
		ids = append(ids, model.UtxoID{TxHash: model.Hash(inputHashes[i]), Index: index})
	}
	return tx, ids, nil
}
