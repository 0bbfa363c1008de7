package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
)

// Block is a mined (or in-progress) block. MerkleRoot is empty when the block carries
// no transactions.
type Block struct {
	Hash         Hash           `json:"hash"`
	PreviousHash Hash           `json:"previous_hash"`
	Height       uint64         `json:"height"`
	Nonce        uint64         `json:"nonce"`
	Difficulty   int            `json:"difficulty"`
	MerkleRoot   Hash           `json:"merkle_root,omitempty"`
	Reward       Coin           `json:"reward"`
	Transactions []*Transaction `json:"transactions"`
	CreatedAt    time.Time      `json:"created_at"`
	MinedAt      time.Time      `json:"mined_at"`
}

// GenesisBlock returns the deterministic first block for the given creation time.
func GenesisBlock(now time.Time) *Block {
	createdAt := now.UTC().Truncate(time.Millisecond)
	b := &Block{
		PreviousHash: GenesisPreviousHash,
		Reward:       ZeroCoin,
		Transactions: []*Transaction{},
		CreatedAt:    createdAt,
		MinedAt:      createdAt,
	}
	b.Hash = b.HashWithNonce(0)
	return b
}

// NewTemplate prepares an unmined child of parent carrying txs.
func NewTemplate(parent *Block, difficulty int, reward Coin, txs []*Transaction, now time.Time) (*Block, error) {
	if parent == nil {
		return nil, errors.New("new template: nil parent")
	}
	b := &Block{
		PreviousHash: parent.Hash,
		Height:       parent.Height + 1,
		Difficulty:   difficulty,
		Reward:       reward,
		Transactions: make([]*Transaction, 0, len(txs)+1),
		CreatedAt:    now.UTC().Truncate(time.Millisecond),
	}
	for _, tx := range txs {
		b.Transactions = append(b.Transactions, tx.Clone())
	}
	if err := b.UpdateMerkleRoot(); err != nil {
		return nil, err
	}
	return b, nil
}

// AddTransaction appends tx and refreshes the merkle root.
func (b *Block) AddTransaction(tx *Transaction) error {
	b.Transactions = append(b.Transactions, tx)
	return b.UpdateMerkleRoot()
}

// UpdateMerkleRoot recomputes MerkleRoot from the transaction hashes.
func (b *Block) UpdateMerkleRoot() error {
	if len(b.Transactions) == 0 {
		b.MerkleRoot = ""
		return nil
	}
	leaves := make([][crypto.HashSize]byte, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		leaf, err := tx.Hash.Bytes()
		if err != nil {
			return fmt.Errorf("merkle leaf %q: %w", tx.Hash, err)
		}
		leaves = append(leaves, leaf)
	}
	root, err := crypto.MerkleRoot(leaves)
	if err != nil {
		return fmt.Errorf("merkle root: %w", err)
	}
	b.MerkleRoot = HashFromBytes(root)
	return nil
}

// Data is the proof-of-work prefix hashed together with the nonce.
func (b *Block) Data() string {
	var sb strings.Builder
	sb.WriteString(string(b.PreviousHash))
	sb.WriteString(string(b.MerkleRoot))
	sb.WriteString(strconv.FormatUint(b.Height, 10))
	sb.WriteString(strconv.Itoa(b.Difficulty))
	sb.WriteString(b.Reward.String())
	sb.WriteString(strconv.FormatInt(b.CreatedAt.UnixMilli(), 10))
	return sb.String()
}

// HashWithNonce returns Hash256d(Data() ++ decimal(nonce)).
func (b *Block) HashWithNonce(nonce uint64) Hash {
	return PowHash(b.Data(), nonce)
}

// PowHash hashes a precomputed block data prefix with nonce.
func PowHash(data string, nonce uint64) Hash {
	return HashFromBytes(crypto.Hash256d([]byte(data + strconv.FormatUint(nonce, 10))))
}

// MeetsDifficulty reports whether hash starts with at least difficulty '0' hex characters.
func MeetsDifficulty(hash Hash, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if difficulty > len(hash) {
		return false
	}
	return strings.Count(string(hash[:difficulty]), "0") == difficulty
}

// TransactionHashes lists the hashes of the block transactions in order.
func (b *Block) TransactionHashes() []Hash {
	hashes := make([]Hash, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		hashes = append(hashes, tx.Hash)
	}
	return hashes
}

// Clone returns a copy with cloned transactions.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	c := *b
	c.Transactions = make([]*Transaction, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		c.Transactions = append(c.Transactions, tx.Clone())
	}
	return &c
}
