package models

import "testing"

func TestIsValidDraftTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{DraftStatusPending, DraftStatusApproved, true},
		{DraftStatusPending, DraftStatusRejected, true},
		{DraftStatusPending, DraftStatusRevisionRequested, true},
		{DraftStatusApproved, DraftStatusPosted, true},

		// Revision loop returns only to pending
		{DraftStatusRevisionRequested, DraftStatusPending, true},
		{DraftStatusRevisionRequested, DraftStatusApproved, false},
		{DraftStatusRevisionRequested, DraftStatusPosted, false},

		// Revision must not be reachable from terminal or approved states
		{DraftStatusApproved, DraftStatusRevisionRequested, false},
		{DraftStatusRejected, DraftStatusRevisionRequested, false},
		{DraftStatusPosted, DraftStatusRevisionRequested, false},

		// Posting only from approved
		{DraftStatusPending, DraftStatusPosted, false},
		{DraftStatusRejected, DraftStatusPosted, false},
		{DraftStatusRevisionRequested, DraftStatusPosted, false},
		{DraftStatusPosted, DraftStatusPosted, false},

		// Terminal states
		{DraftStatusRejected, DraftStatusPending, false},
		{DraftStatusPosted, DraftStatusPending, false},

		// Unknown statuses
		{"nonexistent", DraftStatusPending, false},
		{DraftStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidDraftTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidDraftTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllDraftStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		DraftStatusPending, DraftStatusApproved, DraftStatusRejected,
		DraftStatusRevisionRequested, DraftStatusPosted,
	}

	for _, status := range allStatuses {
		if _, ok := ValidDraftTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidDraftTransitions map", status)
		}
	}
}

func TestTerminalDraftStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{DraftStatusRejected, DraftStatusPosted}
	for _, status := range terminal {
		transitions := ValidDraftTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestIsValidContentType(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{ContentTypePost, true},
		{ContentTypeStory, true},
		{ContentTypeReel, true},
		{ContentTypeCarousel, true},
		{"video", false},
		{"", false},
		{"POST", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidContentType(tt.input); got != tt.expected {
				t.Errorf("IsValidContentType(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidReviewAction(t *testing.T) {
	valid := []string{ReviewActionApprove, ReviewActionReject, ReviewActionRequestRevision}
	for _, a := range valid {
		if !IsValidReviewAction(a) {
			t.Errorf("IsValidReviewAction(%q) = false, want true", a)
		}
	}
	for _, a := range []string{"", "approved", "revise"} {
		if IsValidReviewAction(a) {
			t.Errorf("IsValidReviewAction(%q) = true, want false", a)
		}
	}
}
