package errors

import (
	"errors"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "amount", Message: "must be positive"}
	if got, want := err.Error(), "amount: must be positive"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Source: "yahoo", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected TransportError to unwrap to its cause")
	}
	if got := err.Error(); got != "yahoo: transport failure: connection refused" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &PersistenceError{Op: "insert scraped price", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected PersistenceError to unwrap to its cause")
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&RateLimitedError{Source: "globalquote"}, "globalquote: rate limited by upstream"},
		{&MalformedPayloadError{Source: "yahoo", Detail: "empty result"}, "yahoo: malformed payload: empty result"},
		{&UnknownCommodityError{CommodityID: "gold"}, `unknown commodity "gold"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
