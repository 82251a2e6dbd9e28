package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"arcade/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConflict(t *testing.T) {
	err := failure.Conflict(failure.KindDeviceUnavailable, "device is not open")

	f, ok := err.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, f.Code)
	}

	if f.Kind != failure.KindDeviceUnavailable {
		t.Errorf("expected kind %s, got %s", failure.KindDeviceUnavailable, f.Kind)
	}
}

func TestValidation(t *testing.T) {
	err := failure.Validation(failure.KindRedemptionExceeded, "requested 600 points, max redeemable is 450")

	f, ok := err.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected code %d, got %d", http.StatusUnprocessableEntity, f.Code)
	}

	if f.Message != "requested 600 points, max redeemable is 450" {
		t.Errorf("unexpected message %s", f.Message)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected failure.Kind
	}{
		{
			name:     "tagged failure",
			err:      failure.Validation(failure.KindPaymentSplitMismatch, "split does not add up"),
			expected: failure.KindPaymentSplitMismatch,
		},
		{
			name:     "wrapped tagged failure",
			err:      fmt.Errorf("closing session: %w", failure.Conflict(failure.KindConflict, "state changed")),
			expected: failure.KindConflict,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: failure.KindInternal,
		},
		{
			name:     "not found",
			err:      failure.NotFound("session not found"),
			expected: failure.KindNotFound,
		},
		{
			name:     "upstream timeout",
			err:      failure.UpstreamTimeout("record store deadline exceeded"),
			expected: failure.KindUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.KindOf(tt.err); got != tt.expected {
				t.Errorf("expected kind %s, got %s", tt.expected, got)
			}

			if !failure.IsKind(tt.err, tt.expected) {
				t.Errorf("IsKind(%s) = false, want true", tt.expected)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Kind: failure.KindValidation, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message || f.Kind != expectedF.Kind {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("missing")); code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, code)
	}
}
