package domain

import "time"

// StreamLocalLedger receives an event for every record written to the
// local ledger.
const StreamLocalLedger = "stream:trip:local-ledger"

// LedgerEventKind - type of record appended to the ledger
type LedgerEventKind string

const (
	LedgerTravelRequest LedgerEventKind = "travel_request"
	LedgerMessage       LedgerEventKind = "message"
)

// LedgerEvent - published after a local-ledger append
type LedgerEvent struct {
	Kind       LedgerEventKind `json:"kind"`
	RecordID   string          `json:"record_id"`
	RecordedAt time.Time       `json:"recorded_at"`
	Payload    interface{}     `json:"payload"`
}
