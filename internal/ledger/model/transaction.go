package model

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/goodnatureofminers/pqledger/internal/crypto"
)

// Kind is the tag of the transaction union.
type Kind string

var (
	KindTransfer Kind = "TRANSFER"
	KindReward   Kind = "REWARD"
)

// RewardSignature stands in for a signature on block-subsidy mints, which have no signer.
var RewardSignature = []byte("REWARD")

var canonicalEncoding = mustCanonicalEncoding()

func mustCanonicalEncoding() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("build canonical cbor encoding: %v", err))
	}
	return em
}

// Transaction is a Transfer or a Reward. Kind selects the variant rules; the shared
// fields are identical for both.
type Transaction struct {
	Hash            Hash      `json:"hash"`
	Kind            Kind      `json:"kind"`
	Sender          Address   `json:"sender"`
	Recipient       Address   `json:"recipient"`
	SenderPublicKey []byte    `json:"sender_public_key"`
	Amount          Coin      `json:"amount"`
	Fee             Coin      `json:"fee"`
	CreatedAt       time.Time `json:"created_at"`
	Inputs          []Utxo    `json:"inputs"`
	Outputs         []Utxo    `json:"outputs"`
	Signature       []byte    `json:"signature"`
	Status          Status    `json:"status"`
}

type inputPayload struct {
	_         struct{} `cbor:",toarray"`
	TxHash    string
	Index     string
	Recipient string
	Amount    int64
	CreatedAt int64
}

type transactionPayload struct {
	_               struct{} `cbor:",toarray"`
	Kind            string
	Sender          string
	Recipient       string
	SenderPublicKey []byte
	Amount          int64
	Fee             int64
	CreatedAt       int64
	Inputs          []inputPayload
}

// NewTransfer builds an unsigned transfer with hash and outputs already derived.
func NewTransfer(sender, recipient Address, publicKey []byte, amount, fee Coin, inputs []Utxo, createdAt time.Time) (*Transaction, error) {
	tx := &Transaction{
		Kind:            KindTransfer,
		Sender:          sender,
		Recipient:       recipient,
		SenderPublicKey: publicKey,
		Amount:          amount,
		Fee:             fee,
		CreatedAt:       createdAt.UTC().Truncate(time.Millisecond),
		Inputs:          inputs,
		Status:          StatusInitialised,
	}
	if err := tx.seal(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewReward mints amount to miner. Rewards skip gossip, so they start READY_TO_MINE.
func NewReward(miner Address, amount Coin, createdAt time.Time) (*Transaction, error) {
	tx := &Transaction{
		Kind:      KindReward,
		Sender:    miner,
		Recipient: miner,
		Amount:    amount,
		Fee:       ZeroCoin,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
		Inputs:    []Utxo{},
		Signature: RewardSignature,
		Status:    StatusReadyToMine,
	}
	if err := tx.seal(); err != nil {
		return nil, err
	}
	return tx, nil
}

func (t *Transaction) seal() error {
	hash, err := t.ComputeHash()
	if err != nil {
		return err
	}
	t.Hash = hash

	outputs, err := t.GenerateOutputs()
	if err != nil {
		return err
	}
	t.Outputs = outputs
	return nil
}

// CanonicalPayload encodes every field except hash, signature, status and outputs
// (outputs are derived from the rest) with deterministic CBOR.
func (t *Transaction) CanonicalPayload() ([]byte, error) {
	inputs := make([]inputPayload, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		inputs = append(inputs, inputPayload{
			TxHash:    string(in.ID.TxHash),
			Index:     string(in.ID.Index),
			Recipient: string(in.Recipient),
			Amount:    in.Amount.Atoms(),
			CreatedAt: in.CreatedAt.UnixMilli(),
		})
	}

	payload, err := canonicalEncoding.Marshal(transactionPayload{
		Kind:            string(t.Kind),
		Sender:          string(t.Sender),
		Recipient:       string(t.Recipient),
		SenderPublicKey: t.SenderPublicKey,
		Amount:          t.Amount.Atoms(),
		Fee:             t.Fee.Atoms(),
		CreatedAt:       t.CreatedAt.UnixMilli(),
		Inputs:          inputs,
	})
	if err != nil {
		return nil, fmt.Errorf("encode transaction payload: %w", err)
	}
	return payload, nil
}

// ComputeHash returns Hash256d of the canonical payload.
func (t *Transaction) ComputeHash() (Hash, error) {
	payload, err := t.CanonicalPayload()
	if err != nil {
		return "", err
	}
	return HashFromBytes(crypto.Hash256d(payload)), nil
}

// GenerateOutputs derives the outputs of the variant. The transaction hash must be set.
func (t *Transaction) GenerateOutputs() ([]Utxo, error) {
	switch t.Kind {
	case KindReward:
		return []Utxo{t.output(OutputRecipient, t.Recipient, t.Amount)}, nil
	case KindTransfer:
		change, err := t.Change()
		if err != nil {
			return nil, err
		}
		outputs := []Utxo{t.output(OutputRecipient, t.Recipient, t.Amount)}
		if !change.IsZero() {
			outputs = append(outputs, t.output(OutputSender, t.Sender, change))
		}
		return outputs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
}

// Change returns Σinputs − amount − fee, or ErrInsufficientFunds.
func (t *Transaction) Change() (Coin, error) {
	available, err := SumAmounts(t.Inputs)
	if err != nil {
		return Coin{}, err
	}
	required, err := t.Amount.Add(t.Fee)
	if err != nil {
		return Coin{}, fmt.Errorf("amount plus fee: %w", err)
	}
	if available.Cmp(required) < 0 {
		return Coin{}, fmt.Errorf("%w: have %s, need %s", ErrInsufficientFunds, available, required)
	}
	return available.Sub(required)
}

func (t *Transaction) output(index OutputIndex, recipient Address, amount Coin) Utxo {
	return Utxo{
		ID:        UtxoID{TxHash: t.Hash, Index: index},
		Recipient: recipient,
		Amount:    amount,
		CreatedAt: t.CreatedAt,
	}
}

// HashBytes decodes the transaction hash, the message covered by the signature.
func (t *Transaction) HashBytes() ([]byte, error) {
	b, err := t.Hash.Bytes()
	if err != nil {
		return nil, err
	}
	return b[:], nil
}

// HasRewardSignature reports whether the signature is the reward sentinel.
func (t *Transaction) HasRewardSignature() bool {
	return bytes.Equal(t.Signature, RewardSignature)
}

// Clone returns a deep copy so callers can change status without sharing slices.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	c.SenderPublicKey = append([]byte(nil), t.SenderPublicKey...)
	c.Signature = append([]byte(nil), t.Signature...)
	c.Inputs = append([]Utxo(nil), t.Inputs...)
	c.Outputs = append([]Utxo(nil), t.Outputs...)
	return &c
}
