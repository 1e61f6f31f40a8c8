package lead

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNew              Status = "NEW"
	StatusContacted        Status = "CONTACTED"
	StatusQualified        Status = "QUALIFIED"
	StatusViewingScheduled Status = "VIEWING_SCHEDULED"
	StatusOfferMade        Status = "OFFER_MADE"
	StatusClosed           Status = "CLOSED"
	StatusLost             Status = "LOST"
)

type Source string

const (
	SourceWebsite     Source = "WEBSITE"
	SourceSocialMedia Source = "SOCIAL_MEDIA"
	SourceReferral    Source = "REFERRAL"
	SourceColdCall    Source = "COLD_CALL"
	SourceEvent       Source = "EVENT"
)

// Lead is a sales prospect. Score stays in [0,100] at all times and is
// recomputed whenever the budget range or source changes.
type Lead struct {
	ID            string           `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string           `gorm:"not null" json:"name"`
	Email         string           `gorm:"not null" json:"email"`
	Phone         *string          `json:"phone,omitempty"`
	Status        Status           `gorm:"not null;default:NEW" json:"status"`
	Source        Source           `gorm:"not null" json:"source"`
	BudgetMin     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"budgetMin,omitempty"`
	BudgetMax     *decimal.Decimal `gorm:"type:decimal(14,2)" json:"budgetMax,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Score         int              `gorm:"not null;default:0" json:"score"`
	AssignedAgent string           `gorm:"index;not null" json:"assignedAgent"`
	LastContact   time.Time        `json:"lastContact"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`

	PropertyInterests []PropertyInterest `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"propertyInterests,omitempty"`
}

func (Lead) TableName() string { return "leads" }

// PropertyInterest links a lead to a property it has shown interest in.
// The (lead, property) pair is unique.
type PropertyInterest struct {
	LeadID     string    `gorm:"primaryKey;type:uuid" json:"leadId"`
	PropertyID string    `gorm:"primaryKey;type:uuid" json:"propertyId"`
	AddedBy    string    `gorm:"not null" json:"addedBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PropertyInterest) TableName() string { return "lead_properties" }
