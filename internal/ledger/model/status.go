package model

// Status is the gossip lifecycle state of a transaction.
type Status string

var (
	StatusInitialised Status = "INITIALISED"
	StatusValidated   Status = "VALIDATED"
	StatusBroadcasted Status = "BROADCASTED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusRejected    Status = "REJECTED"
	StatusReadyToMine Status = "READY_TO_MINE"
	StatusInvalidated Status = "INVALIDATED"
	StatusFailed      Status = "FAILED"
)

// Terminal reports whether the status accepts no further gossip input.
func (s Status) Terminal() bool {
	switch s {
	case StatusReadyToMine, StatusInvalidated, StatusFailed:
		return true
	default:
		return false
	}
}
