package rbac

import (
	"testing"

	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       string
		permission string
		expected   bool
	}{
		{models.RoleBrand, PermCreateCampaign, true},
		{models.RoleBrand, PermInvite, true},
		{models.RoleBrand, PermReviewDraft, true},
		{models.RoleBrand, PermRespondInvitation, false},
		{models.RoleBrand, PermCreateDraft, false},
		{models.RoleBrand, PermMarkPosted, false},

		{models.RoleInfluencer, PermRespondInvitation, true},
		{models.RoleInfluencer, PermCreateDraft, true},
		{models.RoleInfluencer, PermMarkPosted, true},
		{models.RoleInfluencer, PermCreateCampaign, false},
		{models.RoleInfluencer, PermReviewDraft, false},
		{models.RoleInfluencer, PermInvite, false},

		{models.RoleAdmin, PermCreateCampaign, true},
		{models.RoleAdmin, PermRespondInvitation, true},
		{models.RoleAdmin, PermReviewDraft, true},

		{"unknown", PermCreateCampaign, false},
		{"", PermInvite, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.permission, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func TestOwnershipPredicates(t *testing.T) {
	brand := uuid.New()
	otherBrand := uuid.New()
	influencer := uuid.New()
	admin := uuid.New()

	campaign := &models.Campaign{BrandUserID: brand}
	invitation := &models.Invitation{InfluencerUserID: influencer}
	draft := &models.Draft{InfluencerUserID: influencer}

	if !CanManageCampaign(brand, models.RoleBrand, campaign) {
		t.Errorf("owning brand should manage its campaign")
	}
	if CanManageCampaign(otherBrand, models.RoleBrand, campaign) {
		t.Errorf("other brand must not manage the campaign")
	}
	if !CanManageCampaign(admin, models.RoleAdmin, campaign) {
		t.Errorf("admin should manage any campaign")
	}
	if CanManageCampaign(brand, models.RoleInfluencer, campaign) {
		t.Errorf("influencer role must never manage a campaign")
	}

	if !CanRespondInvitation(influencer, models.RoleInfluencer, invitation) {
		t.Errorf("invited influencer should respond")
	}
	if CanRespondInvitation(uuid.New(), models.RoleInfluencer, invitation) {
		t.Errorf("another influencer must not respond")
	}
	if CanRespondInvitation(influencer, models.RoleBrand, invitation) {
		t.Errorf("brand role must not respond to invitations")
	}

	if !CanSubmitDraft(influencer, models.RoleInfluencer, draft) {
		t.Errorf("owning influencer should act on own draft")
	}
	if CanSubmitDraft(uuid.New(), models.RoleInfluencer, draft) {
		t.Errorf("non-owner must not act on the draft")
	}
}
