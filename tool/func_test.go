package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestFuncContract(t *testing.T) {
	var _ Tool = Func{}
}

func TestFunc_PrepareDefault(t *testing.T) {
	f := Func{
		Desc: Descriptor{Name: "get_current_time"},
		ExecuteFn: func(_ context.Context, _ Query) (Result, error) {
			return Result{}, nil
		},
	}

	prep, err := f.Prepare(context.Background(), nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if prep.Message != "Running Get Current Time" {
		t.Errorf("Prepare().Message = %q", prep.Message)
	}
	if prep.Confirmation != nil {
		t.Error("default Prepare() should not request confirmation")
	}
}

func TestFunc_PrepareCustom(t *testing.T) {
	f := Func{
		Desc: Descriptor{Name: "dangerous"},
		PrepareFn: func(_ context.Context, _ Query) (Preparation, error) {
			return Preparation{
				Message:      "About to do something",
				Confirmation: &Confirmation{Title: "Proceed?", Message: "Really?"},
			}, nil
		},
		ExecuteFn: func(_ context.Context, _ Query) (Result, error) {
			return Result{}, nil
		},
	}

	prep, err := f.Prepare(context.Background(), nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if prep.Confirmation == nil || prep.Confirmation.Title != "Proceed?" {
		t.Errorf("Prepare().Confirmation = %+v", prep.Confirmation)
	}
}

func TestFunc_ExecuteMissing(t *testing.T) {
	f := Func{Desc: Descriptor{Name: "empty"}}

	_, err := f.Execute(context.Background(), nil)
	if !errors.Is(err, ErrNoExecutor) {
		t.Errorf("Execute() error = %v, want ErrNoExecutor", err)
	}
}

func TestFunc_Cancelled(t *testing.T) {
	executed := false
	f := Func{
		Desc: Descriptor{Name: "test"},
		ExecuteFn: func(_ context.Context, _ Query) (Result, error) {
			executed = true
			return Result{Text: "done"}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Prepare(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Prepare() error = %v, want context.Canceled", err)
	}
	res, err := f.Execute(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if res.Text != "" {
		t.Errorf("cancelled Execute() returned partial result %q", res.Text)
	}
	if executed {
		t.Error("cancelled Execute() should not run the tool")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want string
	}{
		{
			name: "annotation title wins",
			desc: Descriptor{
				Name:        "get_current_time",
				Title:       "Current Time",
				Annotations: &mcp.ToolAnnotations{Title: "Clock"},
			},
			want: "Clock",
		},
		{
			name: "descriptor title",
			desc: Descriptor{Name: "get_current_time", Title: "Current Time"},
			want: "Current Time",
		},
		{
			name: "underscores",
			desc: Descriptor{Name: "get_current_time"},
			want: "Get Current Time",
		},
		{
			name: "hyphens",
			desc: Descriptor{Name: "show-message"},
			want: "Show Message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.desc); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptor_Model(t *testing.T) {
	d := Descriptor{
		Name:        "get_current_time",
		Description: "Reports the time.",
		InputSchema: map[string]any{"type": "object"},
		Tags:        []string{"Time", "clock"},
	}

	m := d.Model("tools")
	if m.Name != "get_current_time" {
		t.Errorf("Model().Name = %q", m.Name)
	}
	if m.Namespace != "tools" {
		t.Errorf("Model().Namespace = %q", m.Namespace)
	}
	if m.Description != "Reports the time." {
		t.Errorf("Model().Description = %q", m.Description)
	}
}
