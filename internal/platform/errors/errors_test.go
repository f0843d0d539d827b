package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode_Status(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
		ErrorCode(4242):          http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := code.Status(); got != want {
			t.Errorf("ErrorCode(%d).Status() = %d, want %d", code, got, want)
		}
	}
}

func TestError_MessageAndCause(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("connection reset")
	err := Wrap(cause, ErrorCodeUnavailable, "save module")
	if err.Error() != "save module: connection reset" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
	e, ok := As(fmt.Errorf("handler: %w", err))
	if !ok || e.Message() != "save module" || e.Code() != ErrorCodeUnavailable {
		t.Fatalf("As through fmt wrap = %+v, %v", e, ok)
	}
	if got := Newf(ErrorCodeJSON, "bad %s", "body").Error(); got != "bad body" {
		t.Fatalf("Newf = %q", got)
	}
	if _, ok := As(cause); ok {
		t.Fatalf("As matched a foreign error")
	}
}

func TestWithField_CopiesOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "module name is not valid")
	named := WithField(base, "name")

	if e, _ := As(named); e.Field() != "name" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("original mutated: %q", e.Field())
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "name") != foreign {
		t.Fatalf("foreign error not passed through")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil = %+v", w)
	}
	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign = %+v", w)
	}
	w := WireFrom(WithField(Wrap(stderrs.New("secret dsn"), ErrorCodeValidation, "nope"), "name"))
	if w != (Wire{Code: ErrorCodeValidation, Message: "nope", Field: "name"}) {
		t.Fatalf("ours = %+v", w)
	}
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("module %s", "x"), ErrorCodeNotFound},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
		{ErrNotFound, ErrorCodeNotFound},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.want) {
			t.Errorf("%v: code = %d, want %d", c.err, CodeOf(c.err), c.want)
		}
	}
	if got := NotFoundf("module %s", "x").Error(); got != "module x" {
		t.Fatalf("NotFoundf = %q", got)
	}
	if HTTPStatus(stderrs.New("x")) != http.StatusInternalServerError {
		t.Fatalf("foreign error status")
	}
}
