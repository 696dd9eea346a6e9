package models

import "testing"

func TestIsValidInvitationTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{InvitationStatusPending, InvitationStatusAccepted, true},
		{InvitationStatusPending, InvitationStatusRejected, true},

		// Responses are single-use: nothing leaves a terminal status
		{InvitationStatusAccepted, InvitationStatusRejected, false},
		{InvitationStatusRejected, InvitationStatusAccepted, false},
		{InvitationStatusAccepted, InvitationStatusPending, false},
		{InvitationStatusRejected, InvitationStatusPending, false},

		{InvitationStatusPending, InvitationStatusPending, false},
		{"nonexistent", InvitationStatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidInvitationTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidInvitationTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestIsValidInvitationDecision(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{InvitationStatusAccepted, true},
		{InvitationStatusRejected, true},
		{InvitationStatusPending, false},
		{"", false},
		{"declined", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidInvitationDecision(tt.input); got != tt.expected {
				t.Errorf("IsValidInvitationDecision(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
