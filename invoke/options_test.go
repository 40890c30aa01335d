package invoke

import (
	"errors"
	"testing"

	"github.com/ming86/lmtools/tool"
)

func TestNew_RequiresRegistry(t *testing.T) {
	_, err := New(Options{})
	if !errors.Is(err, ErrToolsRequired) {
		t.Errorf("New() error = %v, want ErrToolsRequired", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	h, err := New(Options{Tools: tool.NewRegistry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if h.namespace != DefaultNamespace {
		t.Errorf("namespace = %q, want %q", h.namespace, DefaultNamespace)
	}
	if !h.validate {
		t.Error("validation should default to enabled")
	}
	if h.notifier == nil {
		t.Error("notifier should default to notify.Discard")
	}
	if h.logger == nil {
		t.Error("logger should default to a no-op")
	}
	if h.clock == nil {
		t.Error("clock should default to the system clock")
	}
}

func TestNew_SkipValidation(t *testing.T) {
	h, err := New(Options{Tools: tool.NewRegistry(), SkipValidation: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if h.validate {
		t.Error("SkipValidation should disable validation")
	}
}
