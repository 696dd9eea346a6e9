package dto

type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Handle      string   `json:"handle"`
	DisplayName *string  `json:"display_name,omitempty"`
	Role        string   `json:"role"` // influencer / brand
	Categories  []string `json:"categories,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title             string   `json:"title"`
	Description       *string  `json:"description,omitempty"`
	MinFollowers      int64    `json:"min_followers"`
	MaxFollowers      int64    `json:"max_followers"`
	MinEngagementRate float64  `json:"min_engagement_rate"`
	Categories        []string `json:"categories,omitempty"`
	MinBudget         float64  `json:"min_budget"`
	MaxBudget         float64  `json:"max_budget"`
}

type UpdateCampaignRequest struct {
	Title             string   `json:"title"`
	Description       *string  `json:"description,omitempty"`
	MinFollowers      int64    `json:"min_followers"`
	MaxFollowers      int64    `json:"max_followers"`
	MinEngagementRate float64  `json:"min_engagement_rate"`
	Categories        []string `json:"categories,omitempty"`
	MinBudget         float64  `json:"min_budget"`
	MaxBudget         float64  `json:"max_budget"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status"` // active / completed
}

// Invitations

type InviteRequest struct {
	InfluencerUserID string `json:"influencer_user_id"`
}

type RespondInvitationRequest struct {
	Decision string `json:"decision"` // accepted / rejected
}

// Drafts

type SubmitDraftRequest struct {
	CampaignID  string   `json:"campaign_id"`
	Title       string   `json:"title"`
	ContentType string   `json:"content_type"` // post / story / reel / carousel
	Caption     string   `json:"caption"`
	MediaURLs   []string `json:"media_urls,omitempty"`
}

type ResubmitDraftRequest struct {
	Title       string   `json:"title"`
	ContentType string   `json:"content_type"`
	Caption     string   `json:"caption"`
	MediaURLs   []string `json:"media_urls,omitempty"`
}

type ReviewDraftRequest struct {
	Action   string `json:"action"` // approve / reject / request_revision
	Feedback string `json:"feedback,omitempty"`
}
