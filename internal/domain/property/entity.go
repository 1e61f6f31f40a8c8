package property

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeApartment  Type = "APARTMENT"
	TypeHouse      Type = "HOUSE"
	TypeCommercial Type = "COMMERCIAL"
	TypeLand       Type = "LAND"
)

type Status string

const (
	StatusAvailable     Status = "AVAILABLE"
	StatusUnderContract Status = "UNDER_CONTRACT"
	StatusSold          Status = "SOLD"
	StatusRented        Status = "RENTED"
)

// Property is a listing owned by an agent. Campaigns and lead interests
// reference it.
type Property struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Address     string          `gorm:"not null" json:"address"`
	Type        Type            `gorm:"not null" json:"type"`
	Status      Status          `gorm:"not null;default:AVAILABLE" json:"status"`
	Price       decimal.Decimal `gorm:"type:decimal(14,2)" json:"price"`
	Area        float64         `json:"area"`
	Rooms       int             `json:"rooms"`
	Features    []string        `gorm:"serializer:json" json:"features"`
	AgentID     string          `gorm:"index;not null" json:"agentId"`
	ListingDate time.Time       `json:"listingDate"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Images []Image `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Property) TableName() string { return "properties" }

// Image is an attachment on a property listing.
type Image struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	PropertyID string    `gorm:"index;not null" json:"propertyId"`
	Filename   string    `json:"filename"`
	URL        string    `gorm:"not null" json:"url"`
	IsPrimary  bool      `json:"isPrimary"`
	SortOrder  int       `json:"sortOrder"`
	UploadedBy string    `json:"uploadedBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Image) TableName() string { return "property_images" }
