package rbac

import (
	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/models"
)

// Permission constants
const (
	PermCreateCampaign    = "create_campaign"
	PermManageCampaign    = "manage_campaign"
	PermRecommend         = "recommend"
	PermInvite            = "invite"
	PermRespondInvitation = "respond_invitation"
	PermCreateDraft       = "create_draft"
	PermMarkPosted        = "mark_posted"
	PermReviewDraft       = "review_draft"
	PermViewAudit         = "view_audit"
)

// RolePermissions defines what each role can do. Admin additionally passes
// every ownership predicate below.
var RolePermissions = map[string][]string{
	models.RoleBrand: {
		PermCreateCampaign, PermManageCampaign, PermRecommend, PermInvite,
		PermReviewDraft, PermViewAudit,
	},
	models.RoleInfluencer: {
		PermRespondInvitation, PermCreateDraft, PermMarkPosted,
	},
	models.RoleAdmin: {
		PermCreateCampaign, PermManageCampaign, PermRecommend, PermInvite,
		PermRespondInvitation, PermCreateDraft, PermMarkPosted,
		PermReviewDraft, PermViewAudit,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}

// The predicates below are the single authorization decision point per
// operation: (principal, entity) -> allow/deny.

// CanManageCampaign allows the owning brand or an admin.
func CanManageCampaign(userID uuid.UUID, role string, c *models.Campaign) bool {
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleBrand && c.BrandUserID == userID
}

// CanRespondInvitation allows only the invited influencer.
func CanRespondInvitation(userID uuid.UUID, role string, inv *models.Invitation) bool {
	return role == models.RoleInfluencer && inv.InfluencerUserID == userID
}

// CanSubmitDraft allows only the owning influencer of the collaboration.
func CanSubmitDraft(userID uuid.UUID, role string, d *models.Draft) bool {
	return role == models.RoleInfluencer && d.InfluencerUserID == userID
}

// CanReviewDraft allows the brand owning the draft's campaign, or an admin.
func CanReviewDraft(userID uuid.UUID, role string, c *models.Campaign) bool {
	return CanManageCampaign(userID, role, c)
}
