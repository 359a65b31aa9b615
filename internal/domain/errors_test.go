package domain

import (
	"errors"
	"testing"
)

func TestCapacityExceededError(t *testing.T) {
	err := NewCapacityExceeded(10)

	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatal("expected errors.Is(err, ErrCapacityExceeded)")
	}

	var ce *CapacityExceededError
	if !errors.As(err, &ce) {
		t.Fatal("expected errors.As to CapacityExceededError")
	}
	if ce.Capacity != 10 {
		t.Errorf("Capacity = %d, want 10", ce.Capacity)
	}

	want := "corpus capacity exceeded: corpus holds at most 10 questions"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCapacityExceededError_NotOtherSentinels(t *testing.T) {
	err := NewCapacityExceeded(1)
	if errors.Is(err, ErrQuestionNotFound) {
		t.Error("capacity error must not match ErrQuestionNotFound")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("capacity error must not match ErrInvalidInput")
	}
}
