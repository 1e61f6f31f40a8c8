package todo

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Todo is a work item visible to its creator and its assignee.
type Todo struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      Status     `gorm:"not null;default:PENDING" json:"status"`
	Priority    Priority   `gorm:"not null;default:MEDIUM" json:"priority"`
	AssignedTo  *string    `gorm:"index" json:"assignedTo,omitempty"`
	CreatedBy   string     `gorm:"index;not null" json:"createdBy"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Comments []Comment `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

func (Todo) TableName() string { return "todos" }

// Comment is a threaded note on a todo; replies reference their parent.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	TodoID    string    `gorm:"index;not null" json:"todoId"`
	Content   string    `gorm:"not null" json:"content"`
	ParentID  *string   `gorm:"index" json:"parentId,omitempty"`
	CreatedBy string    `gorm:"not null" json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Replies []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (Comment) TableName() string { return "todo_comments" }
