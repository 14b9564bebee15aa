package apperr

import (
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Classification(t *testing.T) {
	if Store(nil) != nil {
		t.Error("nil must stay nil")
	}

	// ErrNoDocuments becomes a not-found.
	err := Store(mongo.ErrNoDocuments)
	if KindOf(err) != KindNotFound {
		t.Errorf("ErrNoDocuments: got kind %d, want KindNotFound", KindOf(err))
	}

	// Already-classified errors pass through untouched.
	v := Validation("bad input")
	if got := Store(v); got != v {
		t.Errorf("classified error must pass through, got %v", got)
	}

	// Anything else is opaque.
	err = Store(errors.New("connection refused to 10.0.0.5:27017"))
	if KindOf(err) != KindUnavailable {
		t.Errorf("raw error: got kind %d, want KindUnavailable", KindOf(err))
	}
}

func TestMessage_NeverLeaksInternals(t *testing.T) {
	raw := errors.New("connection refused to 10.0.0.5:27017")

	if got := Message(Store(raw)); got != "internal server error" {
		t.Errorf("unavailable message: got %q", got)
	}
	if got := Message(raw); got != "internal server error" {
		t.Errorf("unclassified message: got %q", got)
	}
	if got := Message(Validation("name is required")); got != "name is required" {
		t.Errorf("validation message: got %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("x"), http.StatusBadRequest},
		{Precondition("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Authorization("x"), http.StatusForbidden},
		{Store(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v): got %d, want %d", c.err, got, c.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Store(cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause must be reachable via errors.Is")
	}
}
