package notification

import "time"

type Type string

const (
	TypeApprovalNeeded Type = "APPROVAL_NEEDED"
	TypeTaskAssigned   Type = "TASK_ASSIGNED"
	TypeLeadActivity   Type = "LEAD_ACTIVITY"
	TypeSystem         Type = "SYSTEM"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Notification is a per-user inbox entry, also pushed over websocket when
// the recipient is connected.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	Type      Type      `gorm:"not null" json:"type"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	Priority  Priority  `gorm:"not null;default:MEDIUM" json:"priority"`
	ActionURL *string   `json:"actionUrl,omitempty"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }
