package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"not found matches sentinel", NotFound("entry %q not found", "abc"), ErrNotFound, true},
		{"storage matches sentinel", Storage("write failed", errors.New("disk full")), ErrStorage, true},
		{"wrapped duplicate matches", fmt.Errorf("add plant: %w", Duplicate("exists")), ErrDuplicate, true},
		{"validation is not invalid format", Validation("bad"), ErrInvalidFormat, false},
		{"plain error never matches", errors.New("boom"), ErrStorage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, expected %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := Storage("failed to save entries", cause)

	if err.Error() != "failed to save entries: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable through Unwrap")
	}
	if ErrNotFound.Error() != "not found" {
		t.Errorf("sentinel message = %q, expected %q", ErrNotFound.Error(), "not found")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(fmt.Errorf("outer: %w", InvalidFormat("not json", nil))) != KindInvalidFormat {
		t.Error("expected KindInvalidFormat through wrapping")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("expected empty kind for unclassified error")
	}
	if IsKind(nil, KindStorage) {
		t.Error("nil error must not carry a kind")
	}
}
