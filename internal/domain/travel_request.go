package domain

import "time"

// RequestStatus - lifecycle state of a travel request
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestMatched    RequestStatus = "matched"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
)

// TravelRequest - one matching attempt by a traveller
type TravelRequest struct {
	ID          string        `json:"id" firestore:"id"`
	UserID      string        `json:"user_id" firestore:"user_id"`
	StartDate   time.Time     `json:"start_date" firestore:"start_date"`
	EndDate     time.Time     `json:"end_date" firestore:"end_date"`
	Budget      Budget        `json:"budget" firestore:"budget"`
	Areas       []string      `json:"areas" firestore:"areas"`
	Categories  []string      `json:"categories" firestore:"categories"`
	GroupSize   int           `json:"group_size" firestore:"group_size"`
	Preferences []string      `json:"preferences" firestore:"preferences"`
	Status      RequestStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time     `json:"created_at" firestore:"created_at"`
}

// Message - traveller/planner conversation entry
type Message struct {
	ID         string    `json:"id" firestore:"id"`
	RequestID  string    `json:"request_id" firestore:"request_id"`
	SenderID   string    `json:"sender_id" firestore:"sender_id"`
	ReceiverID string    `json:"receiver_id" firestore:"receiver_id"`
	Content    string    `json:"content" firestore:"content"`
	Read       bool      `json:"read" firestore:"read"`
	CreatedAt  time.Time `json:"created_at" firestore:"created_at"`
}

// Ledger holds records persisted locally while the remote backend was
// unusable. Both slices are append-only.
type Ledger struct {
	TravelRequests []TravelRequest `json:"travel_requests"`
	Messages       []Message       `json:"messages"`
}

// BackendStatus - snapshot of remote backend reachability
type BackendStatus struct {
	Configured  bool      `json:"configured"`
	Available   bool      `json:"available"`
	Initialized bool      `json:"initialized"`
	RetryCount  int       `json:"retry_count"`
	MaxRetries  int       `json:"max_retries"`
	LastChecked time.Time `json:"last_checked,omitempty"`
}
