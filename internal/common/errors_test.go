package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_ListsAllFields(t *testing.T) {
	err := &ValidationError{Fields: []string{"phone", "last_name"}}

	msg := err.Error()
	if !strings.Contains(msg, "phone") || !strings.Contains(msg, "last_name") {
		t.Fatalf("expected both fields in message, got %q", msg)
	}
	if !IsValidation(err) {
		t.Fatalf("IsValidation must be true")
	}
}

func TestNotFoundError_UserAndMessageVariants(t *testing.T) {
	userErr := &NotFoundError{Username: "ghost"}
	if !strings.Contains(userErr.Error(), `"ghost"`) {
		t.Fatalf("expected username in message, got %q", userErr.Error())
	}

	msgErr := &NotFoundError{MessageID: 42}
	if !strings.Contains(msgErr.Error(), "42") {
		t.Fatalf("expected message id in message, got %q", msgErr.Error())
	}
}

func TestKindMatching_ThroughWrapping(t *testing.T) {
	base := &ConflictError{Username: "alice"}
	wrapped := fmt.Errorf("register: %w", base)

	if !IsConflict(wrapped) {
		t.Fatalf("IsConflict must see through wrapping")
	}

	var target *ConflictError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As must match wrapped ConflictError")
	}
	if target.Username != "alice" {
		t.Fatalf("unexpected username: %q", target.Username)
	}
}

func TestStoreError_UnwrapsDriverError(t *testing.T) {
	driver := errors.New("connection refused")
	err := &StoreError{Op: "users.All", Err: driver}

	if !errors.Is(err, driver) {
		t.Fatalf("StoreError must unwrap to the driver error")
	}
	if !strings.Contains(err.Error(), "users.All") {
		t.Fatalf("expected op in message, got %q", err.Error())
	}
}

func TestIsHelpers_FalseForOtherKinds(t *testing.T) {
	err := &StoreError{Op: "x", Err: errors.New("y")}

	if IsNotFound(err) || IsConflict(err) || IsValidation(err) {
		t.Fatalf("helpers must not match a StoreError")
	}
}
