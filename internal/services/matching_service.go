package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/matching"
	"github.com/influencer-marketplace/backend/internal/rbac"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// MatchingService produces ranked influencer recommendations for a campaign.
// The candidate pool comes from the latest stored metrics snapshot per
// influencer; ranking itself is pure and lives in the matching package.
type MatchingService struct {
	campaignRepo   *repositories.CampaignRepo
	metricsRepo    *repositories.MetricsRepo
	invitationRepo *repositories.InvitationRepo
	cfg            *config.Config
	log            *zap.Logger
}

func NewMatchingService(
	campaignRepo *repositories.CampaignRepo,
	metricsRepo *repositories.MetricsRepo,
	invitationRepo *repositories.InvitationRepo,
	cfg *config.Config,
	log *zap.Logger,
) *MatchingService {
	return &MatchingService{
		campaignRepo:   campaignRepo,
		metricsRepo:    metricsRepo,
		invitationRepo: invitationRepo,
		cfg:            cfg,
		log:            log,
	}
}

func (s *MatchingService) Recommend(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID uuid.UUID, limit int) ([]matching.Candidate, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanManageCampaign(actorID, actorRole, c) {
		return nil, apperr.Forbidden("not allowed to request recommendations for this campaign")
	}

	if limit <= 0 || limit > s.cfg.RecommendMaxLimit {
		limit = s.cfg.RecommendMaxLimit
	}

	pool, err := s.metricsRepo.CandidatePool(ctx)
	if err != nil {
		return nil, err
	}

	invited, err := s.invitationRepo.InvitedSet(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return matching.Rank(c, pool, s.cfg.Estimator(), limit, invited), nil
}
