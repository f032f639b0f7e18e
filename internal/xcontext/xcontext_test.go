package xcontext

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, ok := RequestID(ctx); ok {
		t.Fatal("RequestID on empty context reported ok")
	}
	if _, ok := RequestID(WithRequestID(ctx, "")); ok {
		t.Fatal("RequestID with empty id reported ok")
	}

	id, ok := RequestID(WithRequestID(ctx, "abc"))
	if !ok || id != "abc" {
		t.Errorf("RequestID() = %q, %v, want %q, true", id, ok, "abc")
	}
}

func TestOperation(t *testing.T) {
	t.Parallel()

	ctx := WithOperation(WithRequestID(context.Background(), "abc"), "widgets")
	op, ok := Operation(ctx)
	if !ok || op != "widgets" {
		t.Errorf("Operation() = %q, %v, want %q, true", op, ok, "widgets")
	}
	if id, _ := RequestID(ctx); id != "abc" {
		t.Errorf("RequestID() = %q, want %q", id, "abc")
	}
}
