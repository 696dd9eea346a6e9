package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not_found", NotFound("campaign %s not found", "x"), KindNotFound},
		{"forbidden", Forbidden("not the campaign owner"), KindForbidden},
		{"conflict", Conflict("already invited"), KindConflict},
		{"invalid_input", InvalidInput("title is required"), KindInvalidInput},
		{"invalid_state", InvalidState("draft is not approved"), KindInvalidState},
		{"unavailable", Unavailable(errors.New("conn refused")), KindUnavailable},
		{"wrapped", fmt.Errorf("invite: %w", Conflict("already invited")), KindConflict},
		{"unclassified", errors.New("boom"), KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsMatchesOnKind(t *testing.T) {
	err := fmt.Errorf("respond: %w", Conflict("invitation already responded"))

	if !errors.Is(err, ErrConflict) {
		t.Errorf("errors.Is(err, ErrConflict) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable(cause)

	if !errors.Is(err, cause) {
		t.Errorf("Unavailable should wrap its cause")
	}
	if MessageOf(err) != "service temporarily unavailable" {
		t.Errorf("MessageOf() = %q, want opaque message", MessageOf(err))
	}
}

func TestMessageOfUnclassified(t *testing.T) {
	if got := MessageOf(errors.New("pg: relation missing")); got != "internal error" {
		t.Errorf("MessageOf() = %q, want %q", got, "internal error")
	}
}
