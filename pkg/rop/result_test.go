package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSuccess_CarriesValue(t *testing.T) {
	t.Parallel()

	r := Success([]byte("tokens")).At("tokenization")
	if !r.IsSuccess() || r.IsFailure() || r.IsCancel() {
		t.Fatalf("expected success flags, got success=%v failure=%v cancel=%v", r.IsSuccess(), r.IsFailure(), r.IsCancel())
	}
	if string(r.Result()) != "tokens" {
		t.Fatalf("expected value 'tokens', got %q", r.Result())
	}
	if r.Step() != "tokenization" {
		t.Fatalf("expected step tokenization, got %q", r.Step())
	}
	if r.CreatedAt().Location().String() != "UTC" {
		t.Fatalf("expected UTC creation time, got %v", r.CreatedAt())
	}
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	in := Cancel[int](boom).At("parsing")
	out := FailFrom[int, string](in)

	if out.Id() != in.Id() {
		t.Fatalf("expected id %v, got %v", in.Id(), out.Id())
	}
	if !out.IsCancel() || out.IsFailure() {
		t.Fatalf("expected cancel to be preserved")
	}
	if out.Step() != "parsing" || !errors.Is(out.Err(), boom) {
		t.Fatalf("unexpected step/err: %q %v", out.Step(), out.Err())
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[int]
	if !r.IsEmpty() {
		t.Fatalf("zero result should be empty")
	}
	if Fail[int](errors.New("x")).IsEmpty() {
		t.Fatalf("failure should not be empty")
	}
}

type nopStage struct{}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var ptr *nopStage
	var fn func()
	var iface fmt.Stringer

	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", ptr, true},
		{"nil func", fn, true},
		{"nil interface", iface, true},
		{"value", nopStage{}, false},
		{"pointer", &nopStage{}, false},
		{"func", func() {}, false},
	}
	for _, c := range cases {
		if got := IsNil(c.in); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	if n := len(GetErrors(nil)); n != 0 {
		t.Fatalf("expected no errors, got %d", n)
	}
	if errs := GetErrors(a); len(errs) != 1 || errs[0] != a {
		t.Fatalf("expected single error, got %v", errs)
	}
	if errs := GetErrors(errors.Join(a, b)); len(errs) != 2 {
		t.Fatalf("expected 2 joined errors, got %v", errs)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	if !IsCancellationError(fmt.Errorf("stage: %w", context.Canceled)) {
		t.Fatalf("wrapped context.Canceled should be a cancellation")
	}
	if !IsCancellationError(context.DeadlineExceeded) {
		t.Fatalf("deadline should be a cancellation")
	}
	if IsCancellationError(errors.New("other")) {
		t.Fatalf("plain error is not a cancellation")
	}
}
