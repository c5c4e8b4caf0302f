package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("disk on fire")
	err := Wrap(cause, ErrorCodeDB, "query failed")

	if Root(err) != cause {
		t.Fatalf("Root() did not reach the cause")
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("errors.Is failed through the wrapper")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("CodeOf = %v, want ErrorCodeDB", CodeOf(err))
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeFeatureSet, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWireFrom(t *testing.T) {
	err := WithField(Newf(ErrorCodeValidation, "must not be empty"), "title")
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "title" || w.Message != "must not be empty" {
		t.Fatalf("WireFrom = %+v", w)
	}

	plain := stderrs.New("boom")
	w = WireFrom(plain)
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom(plain) = %+v", w)
	}
}

func TestWithOpCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeDB, "db down")
	tagged := WithOp(base, "users.get")

	e1, _ := As(base)
	e2, _ := As(tagged)
	if e1.Op() != "" {
		t.Fatalf("base mutated: op = %q", e1.Op())
	}
	if e2.Op() != "users.get" {
		t.Fatalf("tagged op = %q", e2.Op())
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(NotFoundf("user %d", 7), ErrorCodeNotFound) {
		t.Fatalf("IsCode NotFound expected")
	}
	if IsCode(stderrs.New("x"), ErrorCodeNotFound) {
		t.Fatalf("IsCode matched a plain error")
	}
}

func TestWrapIfNil(t *testing.T) {
	if WrapIf(nil, ErrorCodeDB, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}
}

func TestRetryableIgnoresContextErrors(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatalf("nil is not retryable")
	}
	err := Wrap(stderrs.New("database is locked"), ErrorCodeDB, "exec failed")
	if !IsRetryable(err) {
		t.Fatalf("locked database should be retryable")
	}
}
