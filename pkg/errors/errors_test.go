package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGraph, "node %q appears twice", "db")

	want := `INVALID_GRAPH: node "db" appears twice`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrCodeInvalidGraph) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() should not match a different code")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "load diagram %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if GetCode(err) != ErrCodeStore {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), ErrCodeStore)
	}
}

func TestWrap_CodeSurvivesFurtherWrapping(t *testing.T) {
	inner := New(ErrCodeDiagramNotFound, "no such diagram")
	outer := fmt.Errorf("handler: %w", inner)

	if !Is(outer, ErrCodeDiagramNotFound) {
		t.Error("Is() should find the code through fmt.Errorf wrapping")
	}
	if GetCode(outer) != ErrCodeDiagramNotFound {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeDiagramNotFound)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(stderrors.New("boom")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want %q", got, ErrCodeInternal)
	}
}
