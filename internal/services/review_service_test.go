package services

import (
	"testing"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
)

func TestStatusForAction(t *testing.T) {
	tests := []struct {
		action   string
		expected string
	}{
		{models.ReviewActionApprove, models.DraftStatusApproved},
		{models.ReviewActionReject, models.DraftStatusRejected},
		{models.ReviewActionRequestRevision, models.DraftStatusRevisionRequested},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := statusForAction(tt.action); got != tt.expected {
				t.Errorf("statusForAction(%q) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestCategoryForAction(t *testing.T) {
	tests := []struct {
		action   string
		expected string
	}{
		{models.ReviewActionApprove, models.FeedbackCategoryApproval},
		{models.ReviewActionReject, models.FeedbackCategoryRejection},
		{models.ReviewActionRequestRevision, models.FeedbackCategoryRevision},
		{"bogus", ""},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := categoryForAction(tt.action); got != tt.expected {
				t.Errorf("categoryForAction(%q) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestFeedbackRequired(t *testing.T) {
	tests := []struct {
		action   string
		required bool
	}{
		{models.ReviewActionApprove, false},
		{models.ReviewActionReject, true},
		{models.ReviewActionRequestRevision, true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := feedbackRequired(tt.action); got != tt.required {
				t.Errorf("feedbackRequired(%q) = %v, want %v", tt.action, got, tt.required)
			}
		})
	}
}

func TestValidateDraftContent(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		contentType string
		caption     string
		wantErr     bool
	}{
		{"valid post", "Launch teaser", "post", "check this out", false},
		{"valid reel", "BTS reel", "reel", "behind the scenes", false},
		{"missing title", "", "post", "caption", true},
		{"missing caption", "Title", "post", "", true},
		{"bad content type", "Title", "video", "caption", true},
		{"empty content type", "Title", "", "caption", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDraftContent(tt.title, tt.contentType, tt.caption)
			if tt.wantErr {
				if apperr.KindOf(err) != apperr.KindInvalidInput {
					t.Errorf("expected invalid_input, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
