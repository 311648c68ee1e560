package solo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/sinphase/pkg/rop"
)

func upper(_ context.Context, s string) (string, error) {
	return strings.ToUpper(s), nil
}

func TestTry_SuccessAttributesStep(t *testing.T) {
	t.Parallel()

	res := Try(context.Background(), Succeed("abc"), "parsing", upper)
	if !res.IsSuccess() || res.Result() != "ABC" {
		t.Fatalf("expected ABC, got success=%v value=%q err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
	if res.Step() != "parsing" {
		t.Fatalf("expected step parsing, got %q", res.Step())
	}
}

func TestTry_ErrorBecomesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res := Try(context.Background(), Succeed("abc"), "semantic",
		func(context.Context, string) (string, error) { return "", boom })

	if !res.IsFailure() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected failure with boom, got %v", res.Err())
	}
	if res.Step() != "semantic" {
		t.Fatalf("expected step semantic, got %q", res.Step())
	}
}

func TestTry_ContextErrorBecomesCancel(t *testing.T) {
	t.Parallel()

	res := Try(context.Background(), Succeed("abc"), "bytecode",
		func(context.Context, string) (string, error) { return "", context.Canceled })

	if !res.IsCancel() {
		t.Fatalf("expected cancel, got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}

func TestTry_SkipsOnFailedInput(t *testing.T) {
	t.Parallel()

	called := false
	in := rop.Fail[string](errors.New("earlier")).At("tokenization")
	res := Try(context.Background(), in, "parsing",
		func(context.Context, string) (string, error) { called = true; return "", nil })

	if called {
		t.Fatalf("function must not run on a failed input")
	}
	if res.Step() != "tokenization" {
		t.Fatalf("failure should stay attributed to tokenization, got %q", res.Step())
	}
}

func TestSwitch_PassesCancelThrough(t *testing.T) {
	t.Parallel()

	in := Cancel[int](context.DeadlineExceeded)
	res := Switch(context.Background(), in, func(context.Context, int) rop.Result[string] {
		t.Fatalf("switch must not run on a cancelled input")
		return rop.Success("")
	})
	if !res.IsCancel() {
		t.Fatalf("expected cancel to pass through")
	}
}

func TestTee_OnlyOnSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	count := func(context.Context, int) { calls++ }

	Tee(context.Background(), Succeed(1), count)
	Tee(context.Background(), Fail[int](errors.New("x")), count)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestFinally_Routes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	route := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(context.Context, int) string { return "ok" },
			func(context.Context, error) string { return "err" },
			func(context.Context, error) string { return "cancel" })
	}

	if got := route(Succeed(1)); got != "ok" {
		t.Fatalf("expected ok, got %s", got)
	}
	if got := route(Fail[int](errors.New("x"))); got != "err" {
		t.Fatalf("expected err, got %s", got)
	}
	if got := route(Cancel[int](context.Canceled)); got != "cancel" {
		t.Fatalf("expected cancel, got %s", got)
	}
}
