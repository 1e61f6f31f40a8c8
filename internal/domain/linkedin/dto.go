package linkedin

type CreateRequest struct {
	Content       string   `json:"content" validate:"required,max=3000"`
	Hashtags      []string `json:"hashtags,omitempty" validate:"omitempty,max=30"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"`
	CampaignID    *string  `json:"campaignId,omitempty"`
}

type UpdateRequest struct {
	Content       *string  `json:"content,omitempty" validate:"omitempty,max=3000"`
	Hashtags      []string `json:"hashtags,omitempty" validate:"omitempty,max=30"`
	ScheduledDate *string  `json:"scheduledDate,omitempty"`
	CampaignID    *string  `json:"campaignId,omitempty"`
}

type ApproveRequest struct {
	Approved *bool  `json:"approved" validate:"required"`
	Feedback string `json:"feedback,omitempty" validate:"omitempty,max=1000"`
}

type ScheduleRequest struct {
	ScheduledDate string `json:"scheduledDate" validate:"required"`
}

type AddMediaRequest struct {
	Filename  string `json:"filename" validate:"required"`
	URL       string `json:"url" validate:"required"`
	MediaType string `json:"mediaType" validate:"required,oneof=IMAGE VIDEO DOCUMENT"`
	FileSize  int64  `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
}

type AnalyticsRequest struct {
	Views            *int64   `json:"views,omitempty" validate:"omitempty,gte=0"`
	Likes            *int64   `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Comments         *int64   `json:"comments,omitempty" validate:"omitempty,gte=0"`
	Shares           *int64   `json:"shares,omitempty" validate:"omitempty,gte=0"`
	ClickThroughRate *float64 `json:"clickThroughRate,omitempty" validate:"omitempty,gte=0"`
	Engagement       *float64 `json:"engagement,omitempty" validate:"omitempty,gte=0"`
}

// ListFilter narrows post list reads.
type ListFilter struct {
	Status     string
	CampaignID string
}
