package repository

import (
	"errors"
	"testing"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
}

func TestUserSentinelErrors(t *testing.T) {
	if !errors.Is(ErrUserNotFound, ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should match itself")
	}
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'users.email'")) {
		t.Error("MySQL duplicate entry error should be detected")
	}
}
