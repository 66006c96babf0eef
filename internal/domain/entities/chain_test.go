package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chainWith(statuses ...StepStatus) ApprovalChain {
	steps := make([]ApprovalStep, 0, len(statuses))
	for _, s := range statuses {
		steps = append(steps, ApprovalStep{Role: "r", Status: s})
	}
	return ApprovalChain{Steps: steps}
}

func TestNextPendingIndex(t *testing.T) {
	t.Run("approved prefix points at first pending", func(t *testing.T) {
		c := chainWith(StepStatusApproved, StepStatusApproved, StepStatusPending)
		assert.Equal(t, 2, c.NextPendingIndex())
	})

	t.Run("fresh chain starts at zero", func(t *testing.T) {
		c := chainWith(StepStatusPending, StepStatusPending)
		assert.Equal(t, 0, c.NextPendingIndex())
	})

	t.Run("rejection short-circuits", func(t *testing.T) {
		c := chainWith(StepStatusApproved, StepStatusRejected, StepStatusPending)
		assert.Equal(t, -1, c.NextPendingIndex())
	})

	t.Run("fully approved is terminal", func(t *testing.T) {
		c := chainWith(StepStatusApproved, StepStatusApproved)
		assert.Equal(t, -1, c.NextPendingIndex())
	})
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, ChainStatusApproved, chainWith(StepStatusApproved, StepStatusApproved).DeriveStatus())
	assert.Equal(t, ChainStatusRejected, chainWith(StepStatusApproved, StepStatusRejected).DeriveStatus())
	assert.Equal(t, ChainStatusPending, chainWith(StepStatusApproved, StepStatusPending).DeriveStatus())
	assert.Equal(t, ChainStatusPending, ApprovalChain{}.DeriveStatus())
}

func TestRequestStatusTerminal(t *testing.T) {
	for _, s := range []RequestStatus{RequestStatusConfirmed, RequestStatusRejected, RequestStatusCancelled, RequestStatusRefunded} {
		assert.True(t, s.IsTerminal(), "status %s", s)
	}
	assert.False(t, RequestStatusDraft.IsTerminal())
	assert.False(t, RequestStatusPendingApproval.IsTerminal())

	assert.True(t, RequestStatusCancelled.IsNonFulfilling())
	assert.True(t, RequestStatusRefunded.IsNonFulfilling())
	assert.True(t, RequestStatusRejected.IsNonFulfilling())
	assert.False(t, RequestStatusConfirmed.IsNonFulfilling())
}
