package property

import "github.com/shopspring/decimal"

type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=APARTMENT HOUSE COMMERCIAL LAND apartment house commercial land"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Area        float64  `json:"area"`
	Rooms       int      `json:"rooms"`
	Features    []string `json:"features"`
}

type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Area        *float64 `json:"area,omitempty"`
	Rooms       *int     `json:"rooms,omitempty"`
	Features    []string `json:"features,omitempty"`
}

type AddImageRequest struct {
	Filename  string `json:"filename"`
	URL       string `json:"url" validate:"required"`
	IsPrimary bool   `json:"isPrimary"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateImageRequest struct {
	IsPrimary *bool `json:"isPrimary,omitempty"`
	SortOrder *int  `json:"sortOrder,omitempty"`
}

// ListFilter narrows property list reads. The zero value means no filter.
type ListFilter struct {
	Type     string
	Status   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinArea  *float64
	MaxArea  *float64
	AgentID  string
}
