package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMatrix, "matrix must be square, got %dx%d", 3, 4)
	if err.Code != ErrCodeInvalidMatrix {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidMatrix)
	}
	want := "INVALID_MATRIX: matrix must be square, got 3x4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeCache, cause, "failed to read cached tour")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause with errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "instance not found")
	if !Is(err, ErrCodeNotFound) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTooLarge, "too many nodes")); got != ErrCodeTooLarge {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeTooLarge)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}

	// Code survives wrapping in plain fmt errors.
	wrapped := Wrap(ErrCodeRender, New(ErrCodeInternal, "inner"), "outer")
	if got := GetCode(wrapped); got != ErrCodeRender {
		t.Errorf("GetCode on wrapped = %q, want %q", got, ErrCodeRender)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidStart, "start node 9 out of range")); got != "start node 9 out of range" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
