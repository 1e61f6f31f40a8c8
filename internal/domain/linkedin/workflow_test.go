package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_AllowedTransitions(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
		to     Status
	}{
		{StatusDraft, ActionSubmit, StatusPendingApproval},
		{StatusRejected, ActionSubmit, StatusPendingApproval},
		{StatusPendingApproval, ActionApprove, StatusApproved},
		{StatusPendingApproval, ActionReject, StatusRejected},
		{StatusApproved, ActionSchedule, StatusScheduled},
	}
	for _, tc := range cases {
		to, ok := Next(tc.from, tc.action)
		assert.True(t, ok, "%s + %s should be allowed", tc.from, tc.action)
		assert.Equal(t, tc.to, to)
	}
}

func TestNext_RejectedTransitions(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
	}{
		{StatusDraft, ActionApprove},
		{StatusDraft, ActionReject},
		{StatusDraft, ActionSchedule},
		{StatusPendingApproval, ActionSubmit},
		{StatusPendingApproval, ActionSchedule},
		{StatusApproved, ActionSubmit},
		{StatusApproved, ActionApprove},
		{StatusScheduled, ActionSubmit},
		{StatusScheduled, ActionSchedule},
		{StatusPublished, ActionSubmit},
		{StatusPublished, ActionApprove},
		{StatusPublished, ActionSchedule},
	}
	for _, tc := range cases {
		_, ok := Next(tc.from, tc.action)
		assert.False(t, ok, "%s + %s should be invalid", tc.from, tc.action)
	}
}

func TestMutable(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusScheduled} {
		assert.True(t, Mutable(s), "%s should be mutable", s)
	}
	assert.False(t, Mutable(StatusPublished))
}
