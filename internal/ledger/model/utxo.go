package model

import (
	"fmt"
	"time"
)

// OutputIndex selects one of the two output slots of a transaction.
type OutputIndex string

var (
	// OutputRecipient is the payment slot.
	OutputRecipient OutputIndex = "00"
	// OutputSender is the change slot.
	OutputSender OutputIndex = "01"
)

// ParseOutputIndex accepts only OutputRecipient and OutputSender.
func ParseOutputIndex(s string) (OutputIndex, error) {
	idx := OutputIndex(s)
	if !idx.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutputIndex, s)
	}
	return idx, nil
}

// Valid reports whether the index is one of the two output slots.
func (i OutputIndex) Valid() bool {
	return i == OutputRecipient || i == OutputSender
}

// UtxoID addresses an output by its transaction hash and slot.
type UtxoID struct {
	TxHash Hash        `json:"tx_hash"`
	Index  OutputIndex `json:"index"`
}

func (id UtxoID) String() string {
	return string(id.TxHash) + ":" + string(id.Index)
}

// Utxo is a spendable output. Spent flips to true once, when the consuming transaction is mined.
type Utxo struct {
	ID        UtxoID    `json:"id"`
	Recipient Address   `json:"recipient"`
	Amount    Coin      `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	Spent     bool      `json:"spent"`
}

// SumAmounts adds up the amounts of utxos.
func SumAmounts(utxos []Utxo) (Coin, error) {
	total := ZeroCoin
	for _, u := range utxos {
		next, err := total.Add(u.Amount)
		if err != nil {
			return Coin{}, fmt.Errorf("sum utxo %s: %w", u.ID, err)
		}
		total = next
	}
	return total, nil
}

// UtxoIDs returns the ids of utxos in order.
func UtxoIDs(utxos []Utxo) []UtxoID {
	ids := make([]UtxoID, 0, len(utxos))
	for _, u := range utxos {
		ids = append(ids, u.ID)
	}
	return ids
}
