package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseInvoke,
				Kind:   KindTypeMismatch,
				Module: "Clock",
				Method: "now",
				Detail: "argument 0 must be a string",
			},
			contains: []string{"[invoke]", "type_mismatch", "Clock.now", "argument 0"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindNotFound,
			},
			contains: []string{"[resolve]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindInstantiation,
				Detail: "instantiate module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[host]", "instantiation", "instantiate module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseInvoke,
		Kind:  KindInvocation,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseInvoke,
		Kind:   KindTypeMismatch,
		Module: "Clock",
	}

	if !err.Is(&Error{Phase: PhaseInvoke, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseInvoke, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseInvoke, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseInvoke, KindInvocation).
		Module("Clock").
		Method("now").
		Cause(cause).
		Detail("expected %d args, got %d", 1, 2).
		Build()

	if err.Phase != PhaseInvoke {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseInvoke)
	}
	if err.Kind != KindInvocation {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvocation)
	}
	if err.Module != "Clock" || err.Method != "now" {
		t.Errorf("Module.Method = %v.%v, want Clock.now", err.Module, err.Method)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 1 args, got 2" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseHost, "module", "Clock")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "Clock") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		err := Unavailable(PhaseResolve, "delegate")
		if err.Kind != KindUnavailable {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnavailable)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "delegate cannot be nil")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Registration", func(t *testing.T) {
		cause := errors.New("compile failed")
		err := Registration(PhaseHost, "Clock", cause)
		if err.Kind != KindRegistration {
			t.Errorf("Kind = %v, want %v", err.Kind, KindRegistration)
		}
		if !errors.Is(err, &Error{Phase: PhaseHost, Kind: KindRegistration}) {
			t.Error("errors.Is should match phase and kind")
		}
	})

	t.Run("Released", func(t *testing.T) {
		err := Released("callback released")
		if err.Phase != PhaseRetain || err.Kind != KindReleased {
			t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("MethodNotFound", func(t *testing.T) {
		err := MethodNotFound("Clock", "tick")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Error(), "Clock.tick") {
			t.Errorf("message %q should name module.method", err.Error())
		}
	})

	t.Run("AlreadyInstalled", func(t *testing.T) {
		err := AlreadyInstalled()
		if err.Phase != PhaseInstall || err.Kind != KindAlreadyDone {
			t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Instantiation", func(t *testing.T) {
		cause := errors.New("bad binary")
		err := Instantiation("Clock", cause)
		if err.Kind != KindInstantiation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInstantiation)
		}
		if !errors.Is(err.Cause, cause) {
			t.Error("cause not preserved")
		}
	})
}
