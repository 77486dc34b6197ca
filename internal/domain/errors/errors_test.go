package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "원인 없는 에러",
			err:  NewNotFoundError("interface abc"),
			want: "[NOT_FOUND] interface abc",
		},
		{
			name: "원인이 있는 에러",
			err:  NewSystemError("문서 읽기 실패", errors.New("permission denied")),
			want: "[SYSTEM] 문서 읽기 실패: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDomainError_Predicates(t *testing.T) {
	cause := errors.New("bad yaml")
	validation := NewValidationError("문서 파싱 실패", cause)
	wrapped := fmt.Errorf("render: %w", validation)

	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.False(t, IsSystemError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, &DomainError{Type: ErrorTypeValidation})

	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsSystemError(NewSystemError("x", nil)))
	assert.False(t, IsSystemError(errors.New("plain")))
}
