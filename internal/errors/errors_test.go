package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	bare := &AppError{Code: ErrCodeNotFound, Message: "user not found"}
	assert.Equal(t, "user not found", bare.Error())

	wrapped := &AppError{
		Code:    ErrCodeUnavailable,
		Message: "platform API unreachable",
		Cause:   errors.New("dial tcp: connection refused"),
	}
	assert.Equal(t, "platform API unreachable: dial tcp: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("redis: nil")
	err := Wrap(cause, ErrCodeInternal, "load session")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("handler: %w", err), cause)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"not found", NotFound("board not found"), ErrCodeNotFound},
		{"not found formatted", NotFoundf("chapter %s not found", "c1"), ErrCodeNotFound},
		{"conflict", Conflict("plan already exists"), ErrCodeConflict},
		{"validation", Validation("amount must be positive"), ErrCodeValidation},
		{"validation formatted", Validationf("duration %q is not supported", "2_WEEKS"), ErrCodeValidation},
		{"unauthorized", Unauthorized("token rejected"), ErrCodeUnauthorized},
		{"unavailable", Unavailable("platform API unreachable"), ErrCodeUnavailable},
		{"internal", Internal("template render failed"), ErrCodeInternal},
		{"internal formatted", Internalf("decode %s response", "analytics"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
			assert.Empty(t, tt.err.Field)
		})
	}
}

func TestValidationField(t *testing.T) {
	t.Parallel()

	err := ValidationField("mobileNumber", "Mobile number is required.")
	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "mobileNumber", err.Field)
	assert.Equal(t, "Mobile number is required.", err.Message)
	assert.True(t, IsValidation(err))
}

func TestWrap_NilCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"not found matches", IsNotFound, NotFound("x"), true},
		{"not found wrapped", IsNotFound, fmt.Errorf("svc: %w", NotFound("x")), true},
		{"not found wrong code", IsNotFound, Conflict("x"), false},
		{"conflict matches", IsConflict, Conflict("x"), true},
		{"validation matches", IsValidation, ValidationField("email", "x"), true},
		{"unauthorized matches", IsUnauthorized, Unauthorized("x"), true},
		{"unavailable matches", IsUnavailable, Unavailable("x"), true},
		{"internal matches", IsInternal, Internal("x"), true},
		{"plain error", IsNotFound, errors.New("plain"), false},
		{"nil error", IsValidation, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.pred(tt.err))
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrCodeUnavailable, GetCode(Unavailable("x")))
	assert.Equal(t, ErrCodeTimeout, GetCode(&AppError{Code: ErrCodeTimeout, Message: "x"}))
	assert.Equal(t, ErrCodeCanceled, GetCode(&AppError{Code: ErrCodeCanceled, Message: "x"}))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestGetField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "firstName", GetField(ValidationField("firstName", "x")))
	assert.Empty(t, GetField(NotFound("x")))
	assert.Empty(t, GetField(errors.New("plain")))
	assert.Empty(t, GetField(nil))
}
