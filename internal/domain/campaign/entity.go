package campaign

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeSocialMedia Type = "SOCIAL_MEDIA"
	TypeGoogleAds   Type = "GOOGLE_ADS"
	TypePrint       Type = "PRINT"
	TypeEvent       Type = "EVENT"
	TypeEmail       Type = "EMAIL"
)

type Status string

const (
	StatusPlanning  Status = "PLANNING"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Campaign is a marketing campaign, optionally tied to a property.
// Spent may exceed Budget; overspend is reported, never capped.
type Campaign struct {
	ID             string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	PropertyID     *string         `gorm:"index" json:"propertyId,omitempty"`
	Type           Type            `gorm:"not null" json:"type"`
	Status         Status          `gorm:"not null;default:PLANNING" json:"status"`
	Budget         decimal.Decimal `gorm:"type:decimal(14,2)" json:"budget"`
	Spent          decimal.Decimal `gorm:"type:decimal(14,2)" json:"spent"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	TargetAudience string          `json:"targetAudience"`
	Platforms      []string        `gorm:"serializer:json" json:"platforms"`
	CreatedBy      string          `gorm:"index;not null" json:"createdBy"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	KPIs []KPI `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"kpis,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }

// KPI is a target/current metric pair belonging to exactly one campaign.
type KPI struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	CampaignID string          `gorm:"index;not null" json:"campaignId"`
	Metric     string          `gorm:"not null" json:"metric"`
	Target     decimal.Decimal `gorm:"type:decimal(14,2)" json:"target"`
	Current    decimal.Decimal `gorm:"type:decimal(14,2)" json:"current"`
	Unit       string          `json:"unit"`
	UpdatedBy  string          `json:"updatedBy"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (KPI) TableName() string { return "campaign_kpis" }
