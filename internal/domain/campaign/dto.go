package campaign

import "time"

type CreateRequest struct {
	Name           string   `json:"name" validate:"required"`
	PropertyID     *string  `json:"propertyId,omitempty"`
	Type           string   `json:"type" validate:"required"`
	Budget         *float64 `json:"budget" validate:"required,gte=0"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate" validate:"required"`
	TargetAudience string   `json:"targetAudience"`
	Platforms      []string `json:"platforms"`
}

type UpdateRequest struct {
	Name           *string  `json:"name,omitempty"`
	PropertyID     *string  `json:"propertyId,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	Spent          *float64 `json:"spent,omitempty"`
	StartDate      *string  `json:"startDate,omitempty"`
	EndDate        *string  `json:"endDate,omitempty"`
	TargetAudience *string  `json:"targetAudience,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
}

type AddKPIRequest struct {
	Metric string   `json:"metric" validate:"required"`
	Target *float64 `json:"target" validate:"required"`
	Unit   string   `json:"unit"`
}

type UpdateKPIRequest struct {
	Metric  *string  `json:"metric,omitempty"`
	Target  *float64 `json:"target,omitempty"`
	Current *float64 `json:"current,omitempty"`
	Unit    *string  `json:"unit,omitempty"`
}

// ListFilter narrows campaign list reads.
type ListFilter struct {
	Status     string
	Type       string
	PropertyID string
	StartAfter *time.Time
	StartUntil *time.Time
}

// WithPerformance pairs a campaign with its derived metrics for responses.
type WithPerformance struct {
	Campaign
	Performance Performance `json:"performance"`
}
