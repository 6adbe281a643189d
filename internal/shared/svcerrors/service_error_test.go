package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInputError("AGG_1001", "malformed record", nil),
			wantErr: NewInputError("AGG_1001", "malformed record", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("AGG_9000", nil)),
			wantErr: NewInternalError("AGG_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantExitCode int
		wantInternal bool
	}{
		{
			name:         "input not found",
			err:          NewInputNotFoundError("SRC_1000", "input not found", nil),
			wantCategory: "input_not_found",
			wantExitCode: 66,
		},
		{
			name:         "input error",
			err:          NewInputError("AGG_1001", "malformed record", nil),
			wantCategory: "input_error",
			wantExitCode: 65,
		},
		{
			name:         "encoding error",
			err:          NewEncodingError("REN_1000", "key is not valid UTF-8", nil),
			wantCategory: "encoding_error",
			wantExitCode: 65,
		},
		{
			name:         "worker panic",
			err:          NewInternalErrorPanic(errors.New("boom")),
			wantCategory: "internal",
			wantExitCode: 70,
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantExitCode, tt.err.ExitCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
		})
	}
}

func TestServiceError_UnwrapAndMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("offset 12: missing ';'")
	svcErr := NewInputError("AGG_1001", "malformed record", cause)

	assert.ErrorIs(t, svcErr, cause)
	assert.Equal(t, "AGG_1001: malformed record: offset 12: missing ';'", svcErr.Error())
	assert.Equal(t, "SYS_9000", NewInternalErrorPanic(cause).Code)
	assert.Equal(t, "SYS_9001: internal error", NewInternalErrorUndefined(nil).Error())
}
