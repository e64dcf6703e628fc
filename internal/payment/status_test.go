package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())

	assert.False(t, StatusInitializing.IsTerminal())
	assert.False(t, StatusAwaitingApproval.IsTerminal())
	assert.False(t, StatusExecuting.IsTerminal())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    SessionStatus
		to      SessionStatus
		allowed bool
	}{
		{StatusInitializing, StatusAwaitingApproval, true},
		{StatusInitializing, StatusFailed, true},
		{StatusInitializing, StatusExecuting, false},
		{StatusAwaitingApproval, StatusExecuting, true},
		{StatusAwaitingApproval, StatusCancelled, true},
		{StatusAwaitingApproval, StatusCompleted, false},
		{StatusExecuting, StatusCompleted, true},
		{StatusExecuting, StatusFailed, true},
		{StatusExecuting, StatusCancelled, false},
		{StatusCompleted, StatusExecuting, false},
		{StatusCancelled, StatusExecuting, false},
		{StatusFailed, StatusAwaitingApproval, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.allowed, CanTransitionTo(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
