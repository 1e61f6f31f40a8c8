package linkedin

type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
	StatusScheduled       Status = "SCHEDULED"
	StatusPublished       Status = "PUBLISHED"
)

// Action is a workflow transition trigger.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionSchedule Action = "schedule"
)

// transitions is the full workflow table. Anything absent is an invalid
// transition. A rejected post may be resubmitted after edits; SCHEDULED
// and PUBLISHED have no outgoing transitions here because publishing is
// an external process.
var transitions = map[Status]map[Action]Status{
	StatusDraft: {
		ActionSubmit: StatusPendingApproval,
	},
	StatusRejected: {
		ActionSubmit: StatusPendingApproval,
	},
	StatusPendingApproval: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionSchedule: StatusScheduled,
	},
}

// Next returns the target status for an action from the given status, and
// whether the transition is allowed at all.
func Next(from Status, action Action) (Status, bool) {
	to, ok := transitions[from][action]
	return to, ok
}

// Mutable reports whether a post in this status may be edited, deleted,
// or have media attached. Only PUBLISHED is terminal for mutation, and
// that lock has no role-based exception.
func Mutable(s Status) bool {
	return s != StatusPublished
}
