package models

import (
	"errors"
	"testing"

	"github.com/influencer-marketplace/backend/internal/apperr"
)

func TestCampaignValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Campaign
		wantErr bool
	}{
		{"valid full bounds", Campaign{Title: "Summer launch", MinFollowers: 10000, MaxFollowers: 500000, MinBudget: 500, MaxBudget: 5000}, false},
		{"valid open bounds", Campaign{Title: "Open"}, false},
		{"valid min only", Campaign{Title: "Min only", MinFollowers: 1000}, false},
		{"valid max only", Campaign{Title: "Max only", MaxFollowers: 1000}, false},
		{"missing title", Campaign{}, true},
		{"inverted followers", Campaign{Title: "x", MinFollowers: 500000, MaxFollowers: 10000}, true},
		{"negative followers", Campaign{Title: "x", MinFollowers: -1}, true},
		{"inverted budget", Campaign{Title: "x", MinBudget: 5000, MaxBudget: 500}, true},
		{"negative budget", Campaign{Title: "x", MaxBudget: -10}, true},
		{"negative engagement", Campaign{Title: "x", MinEngagementRate: -0.5}, true},
		// min == max is allowed on both bounds
		{"equal followers", Campaign{Title: "x", MinFollowers: 100, MaxFollowers: 100}, false},
		{"equal budget", Campaign{Title: "x", MinBudget: 100, MaxBudget: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperr.ErrInvalidInput) {
				t.Errorf("Validate() kind = %v, want invalid_input", apperr.KindOf(err))
			}
		})
	}
}

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{CampaignStatusDraft, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},
		{CampaignStatusDraft, CampaignStatusCompleted, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
		{CampaignStatusActive, CampaignStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := IsValidCampaignTransition(tt.from, tt.to); got != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}
