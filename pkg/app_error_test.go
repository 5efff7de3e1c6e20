package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := e.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", got)
	}

	simple := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	if simple.Error() != "ORDER_NOT_FOUND: Order not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
