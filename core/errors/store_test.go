package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestTranslateStoreErrorRetryableFailures(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"network error", timeoutErr{}},
		{"wrapped network error", fmt.Errorf("query: %w", timeoutErr{})},
		{"context deadline", context.DeadlineExceeded},
		{"connection exception", &pq.Error{Code: "08006"}},
	}

	for _, tc := range cases {
		appErr := TranslateStoreError(tc.err, "Failed to save")
		if appErr.Code != ErrStoreUnavailable {
			t.Errorf("%s: code = %s, want %s", tc.name, appErr.Code, ErrStoreUnavailable)
		}
		// The caller's message must not leak into the retry wording.
		if appErr.Message == "Failed to save" {
			t.Errorf("%s: retryable failures need the shared message", tc.name)
		}
	}
}

func TestTranslateStoreErrorDefaultsToInternal(t *testing.T) {
	cases := []error{
		fmt.Errorf("some driver failure"),
		&pq.Error{Code: "23505"},
	}

	for _, err := range cases {
		appErr := TranslateStoreError(err, "Failed to save")
		if appErr.Code != ErrInternalServer {
			t.Errorf("%v: code = %s, want %s", err, appErr.Code, ErrInternalServer)
		}
		if appErr.Message != "Failed to save" {
			t.Errorf("%v: message = %q", err, appErr.Message)
		}
	}
}
