package lead

type CreateRequest struct {
	Name              string   `json:"name" validate:"required,max=255"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Source            string   `json:"source" validate:"required"`
	BudgetMin         *float64 `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax         *float64 `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Notes             *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
	AssignedAgent     *string  `json:"assignedAgent,omitempty"`
	PropertyInterests []string `json:"propertyInterests,omitempty" validate:"omitempty,max=20"`
}

type UpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=NEW CONTACTED QUALIFIED VIEWING_SCHEDULED OFFER_MADE CLOSED LOST"`
	Source        *string  `json:"source,omitempty" validate:"omitempty,oneof=WEBSITE SOCIAL_MEDIA REFERRAL COLD_CALL EVENT"`
	BudgetMin     *float64 `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax     *float64 `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Notes         *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
	AssignedAgent *string  `json:"assignedAgent,omitempty"`
}

// SetScoreRequest overrides a lead's score, either from explicit factor
// inputs or a direct value. The direct value is clamped to [0,100].
type SetScoreRequest struct {
	Score   *int               `json:"score,omitempty"`
	Factors map[string]float64 `json:"factors,omitempty"`
}

type AddInterestRequest struct {
	PropertyID string `json:"propertyId" validate:"required,uuid"`
}

// ListFilter narrows lead list reads.
type ListFilter struct {
	Status        string
	Source        string
	AssignedAgent string
	MinScore      *int
	MaxScore      *int
}
