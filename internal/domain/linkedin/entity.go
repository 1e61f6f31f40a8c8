package linkedin

import "time"

// Post is a LinkedIn post moving through the approval workflow. See
// workflow.go for the transition table; PUBLISHED posts are immutable.
type Post struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Content       string     `gorm:"not null" json:"content"`
	Hashtags      []string   `gorm:"serializer:json" json:"hashtags"`
	Status        Status     `gorm:"not null;default:DRAFT" json:"status"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CampaignID    *string    `gorm:"index" json:"campaignId,omitempty"`
	CreatedBy     string     `gorm:"index;not null" json:"createdBy"`
	ApprovedBy    *string    `json:"approvedBy,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Media     []Media    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Analytics *Analytics `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"analytics,omitempty"`
}

func (Post) TableName() string { return "linkedin_posts" }

type Media struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	PostID     string    `gorm:"index;not null" json:"postId"`
	Filename   string    `gorm:"not null" json:"filename"`
	URL        string    `gorm:"not null" json:"url"`
	MediaType  string    `gorm:"not null" json:"mediaType"`
	FileSize   int64     `json:"fileSize"`
	UploadedBy string    `json:"uploadedBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Media) TableName() string { return "post_media" }

// Analytics holds externally collected engagement numbers, one row per
// post, written by an admin-only upsert.
type Analytics struct {
	PostID           string    `gorm:"primaryKey;type:uuid" json:"postId"`
	Views            int64     `gorm:"not null;default:0" json:"views"`
	Likes            int64     `gorm:"not null;default:0" json:"likes"`
	Comments         int64     `gorm:"not null;default:0" json:"comments"`
	Shares           int64     `gorm:"not null;default:0" json:"shares"`
	ClickThroughRate float64   `gorm:"not null;default:0" json:"clickThroughRate"`
	Engagement       float64   `gorm:"not null;default:0" json:"engagement"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Analytics) TableName() string { return "post_analytics" }
