package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type stubTool struct {
	name   string
	invoke func(ctx context.Context, args Args) (string, error)
}

func (t *stubTool) Name() string                   { return t.name }
func (t *stubTool) Description() string            { return "stub" }
func (t *stubTool) Schema() map[string]interface{} { return map[string]interface{}{"type": "object"} }

func (t *stubTool) Invoke(ctx context.Context, args Args) (string, error) {
	return t.invoke(ctx, args)
}

func TestRegistryDuplicateName(t *testing.T) {
	echo := &stubTool{name: "echo", invoke: func(ctx context.Context, args Args) (string, error) {
		return "ok", nil
	}}

	_, err := NewRegistry(echo, echo)
	if err == nil {
		t.Fatal("expected error for duplicate tool name")
	}
	if !strings.Contains(err.Error(), "echo") {
		t.Errorf("error should name the duplicate tool, got: %v", err)
	}
}

func TestRegistryDefinitionsOrder(t *testing.T) {
	mk := func(name string) *stubTool {
		return &stubTool{name: name, invoke: func(ctx context.Context, args Args) (string, error) {
			return "", nil
		}}
	}

	reg, err := NewRegistry(mk("zeta"), mk("alpha"), mk("mid"))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	defs := reg.Definitions()
	want := []string{"zeta", "alpha", "mid"}
	if len(defs) != len(want) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("definition %d = %s, want %s (registration order)", i, defs[i].Name, name)
		}
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	reg, _ := NewRegistry()

	got := reg.Dispatch(context.Background(), "nonexistent", Args{})
	want := "Tool nonexistent not found"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDispatchHandlerError(t *testing.T) {
	failing := &stubTool{name: "broken", invoke: func(ctx context.Context, args Args) (string, error) {
		return "", errors.New("database offline")
	}}
	reg, _ := NewRegistry(failing)

	got := reg.Dispatch(context.Background(), "broken", Args{})
	if got != "Error executing tool: database offline" {
		t.Errorf("unexpected dispatch result: %q", got)
	}
}

func TestDispatchHandlerPanic(t *testing.T) {
	panicking := &stubTool{name: "panicky", invoke: func(ctx context.Context, args Args) (string, error) {
		panic("index out of range")
	}}
	reg, _ := NewRegistry(panicking)

	got := reg.Dispatch(context.Background(), "panicky", Args{})
	if !strings.Contains(got, "Error executing tool") {
		t.Errorf("panic should degrade to error text, got: %q", got)
	}
}

func TestDecodeArgsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated object", `{"max_price": 300`},
		{"not an object", `[1, 2, 3]`},
		{"empty payload", ``},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := DecodeArgs(json.RawMessage(tt.raw))
			if args == nil {
				t.Fatal("DecodeArgs must never return nil")
			}
			if len(args) != 0 {
				t.Errorf("malformed payload should decode to empty args, got %v", args)
			}
		})
	}
}

func TestArgsIntCoercion(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want *int
	}{
		{"json number", Args{"max_price": float64(30000)}, intPtr(30000)},
		{"numeric string", Args{"max_price": "30000"}, intPtr(30000)},
		{"zero treated as absent", Args{"max_price": float64(0)}, nil},
		{"garbage string", Args{"max_price": "cheap"}, nil},
		{"missing key", Args{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.args.Int("max_price")
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("got nil, want %d", *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("got %d, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestArgsLimitFallback(t *testing.T) {
	if got := (Args{}).Limit("limit", 5); got != 5 {
		t.Errorf("missing limit should fall back to default, got %d", got)
	}
	if got := (Args{"limit": float64(3)}).Limit("limit", 5); got != 3 {
		t.Errorf("explicit limit ignored, got %d", got)
	}
	if got := (Args{"limit": float64(-1)}).Limit("limit", 5); got != 5 {
		t.Errorf("negative limit should fall back to default, got %d", got)
	}
}

func intPtr(n int) *int { return &n }
