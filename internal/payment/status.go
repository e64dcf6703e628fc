package payment

// SessionStatus is the lifecycle of one payment attempt. The Executing
// transition is the single-shot guard: once a session has left
// AwaitingApproval, repeated success callbacks have nowhere to go.
type SessionStatus string

const (
	StatusInitializing     SessionStatus = "INITIALIZING"
	StatusAwaitingApproval SessionStatus = "AWAITING_APPROVAL"
	StatusExecuting        SessionStatus = "EXECUTING"
	StatusCompleted        SessionStatus = "COMPLETED"
	StatusCancelled        SessionStatus = "CANCELLED"
	StatusFailed           SessionStatus = "FAILED"
)

func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// String representation (for logging)
func (s SessionStatus) String() string {
	return string(s)
}

var transitions = map[SessionStatus][]SessionStatus{
	StatusInitializing:     {StatusAwaitingApproval, StatusFailed},
	StatusAwaitingApproval: {StatusExecuting, StatusCancelled},
	StatusExecuting:        {StatusCompleted, StatusFailed},
}

func CanTransitionTo(from, to SessionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
