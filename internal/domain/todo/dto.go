package todo

type CreateRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Priority    *string  `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedTo  *string  `json:"assignedTo,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10"`
}

type UpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority    *string  `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedTo  *string  `json:"assignedTo,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10"`
}

type AddCommentRequest struct {
	Content  string  `json:"content" validate:"required,max=2000"`
	ParentID *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
}

// ListFilter narrows todo list reads.
type ListFilter struct {
	Status     string
	Priority   string
	AssignedTo string
	DueBefore  *string
}
