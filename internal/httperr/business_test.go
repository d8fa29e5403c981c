package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("fetch slots: %w", ErrBusiness(CodeInvalidResponse))

	if !IsBusiness(err, CodeInvalidResponse) {
		t.Fatalf("expected %q to match", err)
	}
	if IsBusiness(err, CodeNoSlots) {
		t.Fatalf("unexpected match for %q", CodeNoSlots)
	}
	if IsBusiness(fmt.Errorf("plain"), CodeInvalidResponse) {
		t.Fatal("plain error must not match")
	}
}

func TestHTTPErrorString(t *testing.T) {
	if got := (HTTPError{Code: "invalid_date"}).String(); got != "invalid_date" {
		t.Errorf("got %q", got)
	}
	if got := (HTTPError{Code: "invalid_date", Message: "Invalid date."}).String(); got != "invalid_date: Invalid date." {
		t.Errorf("got %q", got)
	}
}
